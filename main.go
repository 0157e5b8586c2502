// Command splash runs the "made with" splash screen demo.
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--verbose         Enable verbose logging
//	--config <path>   Startup config inside the bundled assets (default assets/config/app.yaml)
//	--fade <dur>      Override the fade-in duration (e.g. 1.5s)
//	--hold <dur>      Override the hold duration (e.g. 1.5s)
//	--skip-splash     Start directly at the title scene
//	--no-settings     Do not load or persist window settings
package main

import (
	"flag"
	"log"

	"github.com/gonewx/splash/pkg/app"
	"github.com/gonewx/splash/pkg/config"
	"github.com/gonewx/splash/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verboseFlag    = flag.Bool("verbose", false, "Enable verbose logging")
	configFlag     = flag.String("config", config.AppConfigPath, "Startup config path inside the bundled assets/ tree")
	fadeFlag       = flag.Duration("fade", -1, "Override the splash fade-in duration (negative: use app.yaml)")
	holdFlag       = flag.Duration("hold", -1, "Override the splash hold duration (negative: use app.yaml)")
	skipSplashFlag = flag.Bool("skip-splash", false, "Start directly at the title scene")
	noSettingsFlag = flag.Bool("no-settings", false, "Do not load or persist window settings")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(assetsFS)

	cfg := app.DefaultConfig()
	cfg.Verbose = *verboseFlag
	cfg.ConfigPath = *configFlag
	cfg.FadeOverride = *fadeFlag
	cfg.HoldOverride = *holdFlag
	cfg.SkipSplash = *skipSplashFlag
	cfg.DisableSettings = *noSettingsFlag

	gameApp, err := app.NewApp(cfg, embedded.FS())
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	gameApp.ConfigureWindow()

	// Start the game loop
	// This will call Update() and Draw() repeatedly until the window is closed
	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}

	gameApp.SaveOnExit()
}
