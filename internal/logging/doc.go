// Package logging provides leveled logging for the codecard service.
//
// The level is resolved once from the environment: DEBUG=true forces
// debug output, otherwise LOG_LEVEL selects one of debug, info, warn,
// or error (default info).
package logging
