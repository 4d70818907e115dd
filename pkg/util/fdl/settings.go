package fdl

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings are the run options that can come from the environment. Command line
// flags override them.
type Settings struct {
	// Seed of the random stream. 0 picks a random seed.
	Seed       int64  `env:"FDL_SEED" envDefault:"42"`
	OutputDir  string `env:"FDL_OUTPUT_DIR" envDefault:"data"`
	ConfigPath string `env:"FDL_CONFIG"`
	SQLitePath string `env:"FDL_SQLITE_PATH"`
	BundlePath string `env:"FDL_BUNDLE"`
	Report     bool   `env:"FDL_REPORT" envDefault:"false"`
	LogLevel   string `env:"FDL_LOG_LEVEL" envDefault:"info"`
}

// LoadSettings parses Settings from the environment
func LoadSettings() (*Settings, error) {
	settings := &Settings{}
	if err := env.Parse(settings); err != nil {
		return nil, fmt.Errorf("failed to parse environment settings: %w", err)
	}
	return settings, nil
}
