// Package main checks that the splash assets resolve and decode the same way
// the game loads them: resources.yaml -> resource ID -> file -> image.
//
// Usage:
//
//	go run ./cmd/check_embed [--root .] [--id IMAGE_SPLASH_LOGO] [--group splash]
package main

import (
	"crypto/md5"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gonewx/splash/pkg/config"
	"github.com/gonewx/splash/pkg/embedded"
	"github.com/gonewx/splash/pkg/game"
)

var (
	rootFlag  = flag.String("root", ".", "Project root containing assets/")
	idFlag    = flag.String("id", config.SplashLogoResourceID, "Resource ID to check")
	groupFlag = flag.String("group", "splash", "Resource group to preload")
)

func main() {
	flag.Parse()

	embedded.Init(os.DirFS(*rootFlag))

	if err := run(os.Stdout, *idFlag, *groupFlag); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// run 打印嵌入资源清单，并按游戏的加载路径检查指定资源
// 调用前必须已经 embedded.Init
func run(w io.Writer, id, group string) error {
	for _, path := range []string{config.ResourceConfigPath, config.AppConfigPath} {
		if !embedded.Exists(path) {
			return fmt.Errorf("missing config file: %s", path)
		}
	}

	images, err := embedded.Glob("assets/images/*.png")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Images (%d):\n", len(images))
	for _, path := range images {
		info, err := embedded.Stat(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s  %d bytes\n", path, info.Size())
	}

	rm := game.NewResourceManager(embedded.FS())
	defer rm.Dispose()
	if err := rm.LoadResourceConfig(config.ResourceConfigPath); err != nil {
		return err
	}

	path, err := rm.ResolveID(id)
	if err != nil {
		return err
	}
	data, err := embedded.ReadFile(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s -> %s\n", id, path)
	fmt.Fprintf(w, "MD5: %x\n", md5.Sum(data))
	fmt.Fprintf(w, "File size: %d bytes\n", len(data))

	// 启动画面走的是不缓存的流式解码
	rc, err := rm.OpenResource(id)
	if err != nil {
		return err
	}
	defer rc.Close()
	img, err := rm.DecodeImage(rc)
	if err != nil {
		return err
	}
	size := img.Bounds().Size()
	img.Deallocate()
	fmt.Fprintf(w, "Decoded: %dx%d\n", size.X, size.Y)

	// 缓存路径：预加载整个资源组，再按 ID 取回
	if err := rm.LoadResourceGroup(group); err != nil {
		return err
	}
	cached, err := rm.LoadImageByID(id)
	if err != nil {
		return err
	}
	if rm.GetImage(path) != cached {
		return fmt.Errorf("%s not served from cache after loading group %s", id, group)
	}
	if cached.Bounds().Size() != size {
		return fmt.Errorf("cached size %v differs from decoded size %v", cached.Bounds().Size(), size)
	}
	rm.ReleaseImage(path)
	if rm.GetImage(path) != nil {
		return fmt.Errorf("%s still cached after release", path)
	}
	fmt.Fprintf(w, "Group %s: ok\n", group)
	return nil
}
