package env

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"slot_machine/internal/model"
)

func writeYAML(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestNewDrawConfigFromYAML_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := NewDrawConfigFromYAML(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("NewDrawConfigFromYAML() error = %v", err)
	}

	want := model.DefaultAlphabet()
	got := cfg.Symbols()
	if len(got) != len(want) {
		t.Fatalf("Symbols() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Symbols()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
	if msgs := cfg.Messages(); msgs.Idle != defaultIdleMessage || msgs.Win != defaultWinMessage || msgs.Lose != defaultLoseMessage {
		t.Errorf("Messages() = %+v", msgs)
	}
	if cfg.StatsWindow() != defaultStatsWindow {
		t.Errorf("StatsWindow() = %d, want %d", cfg.StatsWindow(), defaultStatsWindow)
	}
}

func TestNewDrawConfigFromYAML(t *testing.T) {
	path := writeYAML(t, `
draw:
  symbols: ["A", "B"]
  seed: 99
  stats_window: 50
  max_waiting: 8
  messages:
    win: "yes"
`)

	cfg, err := NewDrawConfigFromYAML(path)
	if err != nil {
		t.Fatalf("NewDrawConfigFromYAML() error = %v", err)
	}
	if got := cfg.Symbols(); len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Errorf("Symbols() = %v", got)
	}
	if cfg.Seed() != 99 || cfg.StatsWindow() != 50 || cfg.MaxWaiting() != 8 {
		t.Errorf("seed=%d window=%d waiting=%d", cfg.Seed(), cfg.StatsWindow(), cfg.MaxWaiting())
	}
	if msgs := cfg.Messages(); msgs.Win != "yes" || msgs.Lose != defaultLoseMessage {
		t.Errorf("Messages() = %+v", msgs)
	}
}

func TestNewDrawConfigFromYAML_Invalid(t *testing.T) {
	cases := []struct {
		name string
		body string
		want error
	}{
		{name: "empty symbols", body: "draw:\n  symbols: []\n", want: ErrEmptySymbols},
		{name: "duplicate symbols", body: "draw:\n  symbols: [\"A\", \"A\"]\n"},
		{name: "blank symbol", body: "draw:\n  symbols: [\"\"]\n"},
		{name: "negative waiting", body: "draw:\n  max_waiting: -1\n"},
		{name: "broken yaml", body: "draw: [\n"},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			_, err := NewDrawConfigFromYAML(writeYAML(t, tc.body))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Errorf("error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestNewHTTPConfig(t *testing.T) {
	t.Setenv("HTTP_HOST", "0.0.0.0")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("HTTP_SHUTDOWN_TIMEOUT", "2s")

	cfg, err := NewHTTPConfig()
	if err != nil {
		t.Fatalf("NewHTTPConfig() error = %v", err)
	}
	if cfg.Address() != "0.0.0.0:9090" {
		t.Errorf("Address() = %q", cfg.Address())
	}
	if cfg.ShutdownTimeout() != 2*time.Second {
		t.Errorf("ShutdownTimeout() = %v", cfg.ShutdownTimeout())
	}
}

func TestNewHTTPConfig_InvalidTimeout(t *testing.T) {
	t.Setenv("HTTP_SHUTDOWN_TIMEOUT", "soon")

	if _, err := NewHTTPConfig(); err == nil {
		t.Fatal("expected error for invalid duration")
	}
}

func TestNewLogConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_MODE", "prod")
	t.Setenv("LOG_FILE", "true")

	cfg, err := NewLogConfig()
	if err != nil {
		t.Fatalf("NewLogConfig() error = %v", err)
	}
	if cfg.Level() != "debug" || !cfg.Production() || !cfg.File() {
		t.Errorf("level=%s prod=%v file=%v", cfg.Level(), cfg.Production(), cfg.File())
	}

	t.Setenv("LOG_MODE", "staging")
	if _, err = NewLogConfig(); err == nil {
		t.Error("expected error for unknown log mode")
	}
}
