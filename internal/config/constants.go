package config

// Built-in dialect vocabulary names
const (
	DialectIEEE        = "ieee"
	DialectFCL         = "fcl"
	DialectJFuzzyLogic = "jfuzzylogic"
	DialectJFLAlias    = "jfl"
)

// Rendering colour modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// NoColorEnv disables colour regardless of terminal detection.
// See https://no-color.org/
const NoColorEnv = "NO_COLOR"

// Log levels accepted in configuration
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// DefaultDialects is loaded when a configuration names none.
var DefaultDialects = []string{DialectIEEE}
