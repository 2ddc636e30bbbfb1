package logger_test

import (
	"errors"
	"fmt"
	"time"

	"github.com/philipp01105/logtargets/logger"
	"github.com/philipp01105/logtargets/target"
)

func fixedClock() time.Time {
	return time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
}

// Register the console and log at two levels; DEBUG is below the threshold.
func Example() {
	log := logger.New("Service")
	log.AddTargets(logger.Targets{
		target.NewConsole(target.Config{Clock: fixedClock}): logger.InfoLevel,
	})

	_ = log.Info("ready")
	_ = log.Debug("trace")
	// Output:
	// [2026-01-15T12:00:00Z] [Console] [INFO] Service: ready
}

// Keyed sinks come from the Logger's own registry.
func ExampleLogger_Email() {
	log := logger.NewBuilder("Billing").
		WithSinkConfig(target.Config{Clock: fixedClock}).
		Build()
	log.AddTarget(log.Email("a@b.com"), logger.WarnLevel)

	_ = log.Info("invoice created")
	_ = log.Error("invoice rejected")
	// Output:
	// [2026-01-15T12:00:00Z] [Email to a@b.com] [ERROR] Billing: invoice rejected
}

// Deleting the last target returns the Logger to its unconfigured state.
func ExampleLogger_DeleteAllTargets() {
	log := logger.New("Worker")
	log.AddTarget(log.File("/var/log/worker.log"), logger.InfoLevel)

	log.DeleteAllTargets()

	err := log.Info("lost")
	fmt.Println(errors.Is(err, logger.ErrUnconfigured))
	// Output:
	// true
}
