package configs

import "strings"

// Storage selects the campaign repository backing. The in-memory driver is
// the default and keeps campaigns for the process lifetime only; the
// postgres driver persists them using the Psql connection settings.
type Storage struct {
	// Driver is "memory" (default) or "postgres". Unknown values fall
	// back to "memory".
	Driver string `env:"DRIVER" envDefault:"memory"`

	// SeedDemo launches a few demo campaigns on startup so the dashboard
	// has data to render immediately.
	SeedDemo bool `env:"SEED_DEMO" envDefault:"false"`
}

// Normalized returns the validated driver name.
func (s Storage) Normalized() string {
	switch strings.ToLower(s.Driver) {
	case "postgres":
		return "postgres"
	default:
		return "memory"
	}
}
