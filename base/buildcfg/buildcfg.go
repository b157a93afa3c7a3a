package buildcfg

// Config carries the diagnostic configuration as an explicit value.
//
// The package-level constants are the source of truth for the running binary;
// Config exists so checking code can be instantiated against any combination
// of axes in a single test run. A zero Config is the production
// configuration: every axis disabled.
type Config struct {
	// Debug enables development-only assertions and attaches source
	// locations to fatal reports.
	Debug bool

	// ExtraChecks enables expensive consistency checks that are too costly
	// for ordinary debug builds.
	ExtraChecks bool

	// PPCPortChecks enables the PowerPC port's extra check family.
	PPCPortChecks bool
}

// Default returns the configuration selected at compile time by the
// `debug`, `extrachecks`, and `ppcchecks` build tags.
func Default() Config {
	return Config{
		Debug:         Debug,
		ExtraChecks:   ExtraChecks,
		PPCPortChecks: PPCPortChecks,
	}
}

// String returns a compact rendering such as "debug,extrachecks" or "release".
func (c Config) String() string {
	s := ""

	if c.Debug {
		s = "debug"
	}

	if c.ExtraChecks {
		if s != "" {
			s += ","
		}

		s += "extrachecks"
	}

	if c.PPCPortChecks {
		if s != "" {
			s += ","
		}

		s += "ppcchecks"
	}

	if s == "" {
		return "release"
	}

	return s
}
