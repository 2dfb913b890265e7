// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/quickly-tally/tally"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	BallotFile   string
	Method       string
	OutputFormat string
}

// OneShot reports whether a single ballot file should be tallied instead of serving
func (c Config) OneShot() bool {
	return c.BallotFile != ""
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile string

	fs := flag.NewFlagSet("quickly-tally", flag.ContinueOnError)

	// Server
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Ballot source database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// One-shot tally
	fs.StringVar(&cfg.BallotFile, "f", "", "Ballot CSV file to tally and exit")
	fs.StringVar(&cfg.Method, "m", "", "Tally method (plurality, runoff, positional, borda)")
	fs.StringVar(&cfg.OutputFormat, "o", "", "Output format (auto, text, json)")

	fs.StringVar(&envFile, "env", ".env", "Environment file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Values already in the environment win over the file
	if err := loadEnvFile(envFile); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.BallotFile == "" {
		cfg.BallotFile = os.Getenv("BALLOT_FILE")
	}
	if cfg.Method == "" {
		cfg.Method = os.Getenv("TALLY_METHOD")
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = os.Getenv("OUTPUT_FORMAT")
		if cfg.OutputFormat == "" {
			cfg.OutputFormat = "auto"
		}
	}

	// A method is only required when tallying a file
	if cfg.Method != "" {
		m, err := tally.ParseMethod(cfg.Method)
		if err != nil {
			return Config{}, err
		}
		cfg.Method = string(m)
	}
	if cfg.OneShot() && cfg.Method == "" {
		return Config{}, errors.New("tally method required (use -m or TALLY_METHOD env)")
	}

	switch cfg.OutputFormat {
	case "auto", "text", "json":
	default:
		return Config{}, fmt.Errorf("invalid output format %q", cfg.OutputFormat)
	}

	return cfg, nil
}

func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}
