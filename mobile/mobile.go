//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译。构建前需要先把资源复制到本目录：
//
//	cp -r assets mobile/
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.gonewx.splash -o build/android/splash.aar -v ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Splash.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/gonewx/splash/pkg/app"
	"github.com/gonewx/splash/pkg/embedded"
)

func init() {
	// 初始化嵌入资源
	// assetsFS 在 embed.go 中声明
	embedded.Init(assetsFS)

	// 移动端窗口尺寸由系统决定，不持久化窗口设置
	cfg := app.DefaultConfig()
	cfg.Verbose = true
	cfg.DisableSettings = true

	gameApp, err := app.NewApp(cfg, embedded.FS())
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	// 注册游戏到 ebitenmobile
	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
