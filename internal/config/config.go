// Package config loads process-wide tunables from the environment so that
// one-shot invocations (CI, scripted pipelines) can adjust behavior without
// CLI flags, the way the teacher's mainer.Parser already supports EnvPrefix
// for flag-backed fields.
package config

import "github.com/caarlos0/env/v6"

// Config holds the loxrun process's environment-derived settings, all
// prefixed LOXRUN_ to stay out of the way of unrelated tooling.
type Config struct {
	// Verbose is loaded from LOXRUN_VERBOSE; no CLI command reads it, so it
	// has no effect on output (the REPL's resolved-AST echo is EchoResolved).
	Verbose bool `env:"LOXRUN_VERBOSE" envDefault:"false"`

	// EchoResolved makes the REPL print each statement's resolved AST (as
	// lang/ast.Printer would for `resolve`) before executing it.
	EchoResolved bool `env:"LOXRUN_ECHO_RESOLVED" envDefault:"false"`
}

// Load reads Config from the current process environment.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}
