// Package startup handles application boot: environment configuration,
// the startup banner and section logging, route dumps, and shutdown
// logging helpers. Build metadata lives here too, injected at link
// time via -ldflags.
package startup
