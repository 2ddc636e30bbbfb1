// Package logger is the public API. A Logger is created for one
// component (its class name) and fans every call out to the targets
// registered on it:
//
//	log := logger.New("Service")
//	log.AddTargets(logger.Targets{
//	    target.Console():       logger.InfoLevel,
//	    log.Email("ops@b.com"):  logger.WarnLevel,
//	})
//	log.Info("ready")
//
// Each target pairs a sink with a minimum level. The message is rendered
// once as "[LEVEL] ClassName: message" and every sink decides against its
// own threshold whether to write it. Logging on a Logger without targets
// returns ErrUnconfigured.
//
// File, Email and API sinks come from the Logger's own Registry, so
// asking twice for the same destination returns the same instance and
// re-adding it only updates its threshold. Deleting a target purges it
// from that registry as well; a second Logger that asked for the same
// destination holds a separate instance and is never affected.
//
// The package keeps a default Logger with the console at InfoLevel; the
// package-level Debug, Info, Warn and Error delegate to it.
package logger
