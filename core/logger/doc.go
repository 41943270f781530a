// Package logger provides structured logging built on the standard slog
// package: a factory with environment presets and nil-safe attribute helpers
// for the attributes this module logs most.
//
//	log := logger.New(
//		logger.WithProduction("authkit"),
//	)
//
//	log.Info("session issued",
//		logger.Component("session"),
//		logger.Subject(subjectID.String()),
//		logger.ClientIP(ip),
//	)
//
// Attribute helpers return an empty slog.Attr for zero inputs, so call sites
// never need nil checks.
package logger
