// Package memory provides an in-process implementation of the session store
// for tests and single-node development. Production deployments should use
// one of the persistent backends (pg, redis, mongo).
package memory
