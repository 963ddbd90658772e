package http

import (
	"time"
)

// Config is read from the environment by config.Load. Timeout bounds both
// reading a request and writing its response.
type Config struct {
	Address         string        `envconfig:"HTTP_ADDRESS" default:"localhost:8080"`
	Timeout         time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
	ShutdownTimeout time.Duration `envconfig:"HTTP_SHUTDOWN_TIMEOUT" default:"15s"`
}
