package consola

import "github.com/kelseyhightower/envconfig"

// EnvConfig mirrors the environment variables the builder's from_env()
// collaborator honors, per spec.md §6. Only Level is interpreted by the
// core (through Registry.Normalize); the rest are carried through for the
// out-of-scope formatting collaborator to read.
type EnvConfig struct {
	Level     string `envconfig:"CONSOLA_LEVEL"`
	Compact   bool   `envconfig:"CONSOLA_COMPACT"`
	NoColor   string `envconfig:"NO_COLOR"`
	ForceColor string `envconfig:"FORCE_COLOR"`
	Columns   string `envconfig:"COLUMNS"`
}

// LoadEnvConfig populates an EnvConfig from the process environment using
// the CONSOLA_ prefix-free variable names spec.md §6 names explicitly.
func LoadEnvConfig() (*EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ResolveLevel normalizes EnvConfig.Level against reg, returning ok=false
// when CONSOLA_LEVEL is unset or names an unknown type: callers decide the
// fallback level in that case, per spec.md §7's "configuration error"
// taxonomy entry.
func (c *EnvConfig) ResolveLevel(reg *Registry) (LogLevel, bool) {
	if c == nil || c.Level == "" {
		return 0, false
	}
	return reg.Normalize(c.Level)
}
