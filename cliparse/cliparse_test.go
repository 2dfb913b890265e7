// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
)

// noEnv points the env file at a path that does not exist
func noEnv(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")

	cfg, err := ParseFlags([]string{"-env", noEnv(t)})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("expected postgres, got %s", cfg.DatabaseType)
	}
	if cfg.OneShot() {
		t.Error("expected server mode without a ballot file")
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_TYPE", "")
	t.Setenv("OUTPUT_FORMAT", "")

	cfg, err := ParseFlags([]string{"-env", noEnv(t)})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3318 {
		t.Errorf("expected default port 3318, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected default sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.OutputFormat != "auto" {
		t.Errorf("expected default auto output, got %s", cfg.OutputFormat)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("TALLY_METHOD", "borda")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-m", "condorcet", "-env", noEnv(t)})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.Method != "positional" {
		t.Errorf("expected condorcet to resolve to positional, got %s", cfg.Method)
	}
}

func TestParseFlags_EnvFile(t *testing.T) {
	t.Setenv("TALLY_METHOD", "")
	t.Setenv("BALLOT_FILE", "")
	os.Unsetenv("TALLY_METHOD")
	os.Unsetenv("BALLOT_FILE")

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("TALLY_METHOD=runoff\nBALLOT_FILE=votes.csv\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// godotenv sets these for the whole process
	t.Cleanup(func() {
		os.Unsetenv("TALLY_METHOD")
		os.Unsetenv("BALLOT_FILE")
	})

	cfg, err := ParseFlags([]string{"-env", path})
	if err != nil {
		t.Fatal(err)
	}

	if !cfg.OneShot() || cfg.BallotFile != "votes.csv" {
		t.Errorf("expected ballot file from env file, got %q", cfg.BallotFile)
	}
	if cfg.Method != "runoff" {
		t.Errorf("expected runoff from env file, got %s", cfg.Method)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	t.Setenv("TALLY_METHOD", "")
	t.Setenv("PORT", "")

	tests := []struct {
		name string
		args []string
	}{
		{"unknown method", []string{"-m", "approval"}},
		{"file without method", []string{"-f", "votes.csv"}},
		{"bad output format", []string{"-o", "yaml"}},
		{"unknown flag", []string{"-x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append(tt.args, "-env", noEnv(t))
			if _, err := ParseFlags(args); err == nil {
				t.Errorf("expected error for %v", tt.args)
			}
		})
	}
}

func TestParseFlags_InvalidPortEnv(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	if _, err := ParseFlags([]string{"-env", noEnv(t)}); err == nil {
		t.Error("expected error for invalid PORT")
	}
}
