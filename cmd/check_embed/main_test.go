package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gonewx/splash/pkg/config"
	"github.com/gonewx/splash/pkg/embedded"
)

func initProjectRoot(t *testing.T) {
	t.Helper()
	root := "../.."
	if _, err := os.Stat(filepath.Join(root, "assets")); err != nil {
		t.Skip("Skipping test - assets directory not found:", err)
	}
	embedded.Init(os.DirFS(root))
}

func TestRunBundledAssets(t *testing.T) {
	initProjectRoot(t)

	var out bytes.Buffer
	if err := run(&out, config.SplashLogoResourceID, "splash"); err != nil {
		t.Fatalf("run() error: %v", err)
	}

	for _, want := range []string{
		"assets/images/splash.png",
		"IMAGE_SPLASH_LOGO -> assets/images/splash.png",
		"Decoded: 400x200",
		"Group splash: ok",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRunErrors(t *testing.T) {
	initProjectRoot(t)

	tests := []struct {
		name  string
		id    string
		group string
	}{
		{name: "unknown id", id: "IMAGE_MISSING", group: "splash"},
		{name: "unknown group", id: config.SplashLogoResourceID, group: "missing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := run(&bytes.Buffer{}, tt.id, tt.group); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
