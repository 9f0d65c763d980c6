// 角色动画演示入口
//
// 用法：
//
//	go run . [--config=data/demo.yaml] [--seed=1] [--verbose]
//
// 快捷键：
//
//	H    - 切换 HUD 帮助面板
//	P    - 暂停/继续
//	R    - 重置（同种子从 tick 0 重跑）
//	F11  - 切换全屏
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/spritelab/pkg/app"
	"github.com/gonewx/spritelab/pkg/game"
)

var (
	configPath = flag.String("config", "data/demo.yaml", "配置文件路径")
	seed       = flag.Int64("seed", 1, "粒子位置随机种子")
	verbose    = flag.Bool("verbose", false, "详细日志")
)

func main() {
	flag.Parse()

	// gdata 初始化失败时降级为仅内存设置，演示仍可运行
	gdataManager, err := gdata.Open(gdata.Config{AppName: "spritelab"})
	if err != nil {
		log.Printf("[Main] Warning: gdata init failed: %v (settings will not persist)", err)
		gdataManager = nil
	}
	settingsManager := game.NewSettingsManager(gdataManager)

	a, err := app.NewApp(app.Config{
		ConfigPath: *configPath,
		Seed:       *seed,
		Verbose:    *verbose,
	}, settingsManager)
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	cfg := a.DemoConfig()
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Timing.TPS)
	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}

	// 退出时保存显示设置
	if err := settingsManager.Save(); err != nil {
		log.Printf("[Main] Warning: failed to save settings: %v", err)
	}
}
