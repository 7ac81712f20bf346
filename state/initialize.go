package state

import (
	"time"
)

// newLocalEnv creates a new LocalEnv instance with default values, logger,
// configuration and report are set up later when command line is parsed.
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start: time.Now(),
	}
}
