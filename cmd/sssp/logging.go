package main

import (
	"errors"
	"fmt"
	"sync"

	"github.com/safing/portbase/log"
)

// DefaultLogLevel keeps regular output free of log lines.
const DefaultLogLevel = "warning"

// ErrBadLogLevel is returned for a --log-level value the logger does not know.
var ErrBadLogLevel = errors.New("sssp: unknown log level")

var startLogging sync.Once

// setupLogging starts the logger once per process and applies level.
func setupLogging(level string) error {
	var startErr error
	startLogging.Do(func() {
		startErr = log.Start()
	})
	if startErr != nil {
		return fmt.Errorf("sssp: start logging: %w", startErr)
	}

	severity := log.ParseLevel(level)
	if severity == 0 {
		return fmt.Errorf("%w: %q", ErrBadLogLevel, level)
	}
	log.SetLogLevel(severity)

	return nil
}
