package mongo

import "time"

// Config holds MongoDB connection settings mapped from the environment.
type Config struct {
	ConnectionURL  string        `env:"MONGO_URL,required"`
	RetryAttempts  int           `env:"MONGO_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"MONGO_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"MONGO_CONNECT_TIMEOUT" envDefault:"30s"`
}
