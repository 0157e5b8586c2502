package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"
)

func TestParseAppConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *AppConfig)
	}{
		{
			name: "valid config",
			yamlContent: `
window:
  title: "Demo"
  width: 800
  height: 600
  resizable: false
splash:
  fadeMs: 1000
  holdMs: 2000
`,
			validate: func(t *testing.T, cfg *AppConfig) {
				if cfg.Window.Title != "Demo" {
					t.Errorf("expected title = Demo, got %s", cfg.Window.Title)
				}
				if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
					t.Errorf("expected 800x600, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
				if cfg.Window.Resizable {
					t.Error("expected resizable = false")
				}
				if cfg.FadeDuration() != time.Second {
					t.Errorf("expected fade = 1s, got %v", cfg.FadeDuration())
				}
				if cfg.HoldDuration() != 2*time.Second {
					t.Errorf("expected hold = 2s, got %v", cfg.HoldDuration())
				}
			},
		},
		{
			name: "partial config keeps defaults",
			yamlContent: `
splash:
  holdMs: 500
`,
			validate: func(t *testing.T, cfg *AppConfig) {
				if cfg.Window.Width != GameWindowWidth || cfg.Window.Height != GameWindowHeight {
					t.Errorf("expected default window size, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
				if cfg.FadeDuration() != DefaultFadeDuration {
					t.Errorf("expected default fade, got %v", cfg.FadeDuration())
				}
				if cfg.HoldDuration() != 500*time.Millisecond {
					t.Errorf("expected hold = 500ms, got %v", cfg.HoldDuration())
				}
			},
		},
		{
			name: "zero fade is allowed",
			yamlContent: `
splash:
  fadeMs: 0
`,
			validate: func(t *testing.T, cfg *AppConfig) {
				if cfg.FadeDuration() != 0 {
					t.Errorf("expected fade = 0, got %v", cfg.FadeDuration())
				}
			},
		},
		{
			name: "negative hold",
			yamlContent: `
splash:
  holdMs: -1
`,
			wantErr:     true,
			errContains: "holdMs",
		},
		{
			name: "negative fade",
			yamlContent: `
splash:
  fadeMs: -10
`,
			wantErr:     true,
			errContains: "fadeMs",
		},
		{
			name: "zero window",
			yamlContent: `
window:
  width: 0
`,
			wantErr:     true,
			errContains: "window size",
		},
		{
			name:        "malformed yaml",
			yamlContent: "window: [",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseAppConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %v", tt.errContains, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadAppConfig(t *testing.T) {
	fsys := fstest.MapFS{
		"assets/config/app.yaml": {Data: []byte("splash:\n  fadeMs: 250\n")},
	}

	cfg, err := LoadAppConfig(fsys, "assets/config/app.yaml")
	if err != nil {
		t.Fatalf("LoadAppConfig() error: %v", err)
	}
	if cfg.FadeDuration() != 250*time.Millisecond {
		t.Errorf("expected fade = 250ms, got %v", cfg.FadeDuration())
	}

	if _, err := LoadAppConfig(fsys, "assets/config/missing.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDefaultAppConfig(t *testing.T) {
	cfg := DefaultAppConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if cfg.FadeDuration() != DefaultFadeDuration || cfg.HoldDuration() != DefaultHoldDuration {
		t.Errorf("unexpected default durations: %v / %v", cfg.FadeDuration(), cfg.HoldDuration())
	}
	if cfg.Window.Title != DefaultWindowTitle {
		t.Errorf("unexpected default title: %s", cfg.Window.Title)
	}
}

// TestBundledAppConfig 验证随游戏发布的 assets/config/app.yaml
func TestBundledAppConfig(t *testing.T) {
	root := "../.."
	if _, err := os.Stat(filepath.Join(root, AppConfigPath)); os.IsNotExist(err) {
		t.Skip("Skipping test - app config file not found:", AppConfigPath)
	}

	cfg, err := LoadAppConfig(os.DirFS(root), AppConfigPath)
	if err != nil {
		t.Fatalf("LoadAppConfig() error: %v", err)
	}
	if cfg.FadeDuration() != DefaultFadeDuration || cfg.HoldDuration() != DefaultHoldDuration {
		t.Errorf("bundled durations = %v / %v, want defaults", cfg.FadeDuration(), cfg.HoldDuration())
	}
	if cfg.Window.Width != GameWindowWidth || cfg.Window.Height != GameWindowHeight {
		t.Errorf("bundled window = %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
}

func TestOverrideDurations(t *testing.T) {
	tests := []struct {
		name     string
		fade     time.Duration
		hold     time.Duration
		wantFade time.Duration
		wantHold time.Duration
	}{
		{name: "negative keeps file values", fade: -1, hold: -1, wantFade: 1500 * time.Millisecond, wantHold: 1500 * time.Millisecond},
		{name: "sub-millisecond fade is kept exactly", fade: 900 * time.Microsecond, hold: -1, wantFade: 900 * time.Microsecond, wantHold: 1500 * time.Millisecond},
		{name: "zero overrides", fade: 0, hold: 0, wantFade: 0, wantHold: 0},
		{name: "hold only", fade: -1, hold: 2500 * time.Microsecond, wantFade: 1500 * time.Millisecond, wantHold: 2500 * time.Microsecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultAppConfig()
			cfg.OverrideDurations(tt.fade, tt.hold)
			if got := cfg.FadeDuration(); got != tt.wantFade {
				t.Errorf("FadeDuration() = %v, want %v", got, tt.wantFade)
			}
			if got := cfg.HoldDuration(); got != tt.wantHold {
				t.Errorf("HoldDuration() = %v, want %v", got, tt.wantHold)
			}
		})
	}
}
