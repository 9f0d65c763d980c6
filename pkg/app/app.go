// Package app 提供演示应用的核心包装器
//
// 该包把世界构造和 ebiten 游戏循环的接线从 main 包提取出来。
// App 实现 ebiten.Game 接口：Update 每 tick 推进一次模拟，
// Draw 只读取状态渲染，两者之间没有并发写入。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/spritelab/pkg/config"
	"github.com/gonewx/spritelab/pkg/game"
	"github.com/gonewx/spritelab/pkg/systems"
)

// backgroundColor 画面底色
var backgroundColor = color.RGBA{R: 24, G: 28, B: 34, A: 255}

// Config 定义应用启动配置
type Config struct {
	// ConfigPath 配置文件路径
	ConfigPath string
	// Seed 随机源种子（粒子位置），固定种子可复现
	Seed int64
	// Verbose 启用详细日志输出
	Verbose bool
}

// App 是演示应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	cfg  *config.DemoConfig
	seed int64

	world           *game.World
	renderSystem    *systems.RenderSystem
	settingsManager *game.SettingsManager

	paused bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化演示应用
func NewApp(cfg Config, settingsManager *game.SettingsManager) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	demoCfg, err := config.LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}
	log.Printf("[App] 配置加载完成: %dx%d, TPS=%d", demoCfg.Window.Width, demoCfg.Window.Height, demoCfg.Timing.TPS)

	a := &App{
		cfg:             demoCfg,
		seed:            cfg.Seed,
		settingsManager: settingsManager,
	}

	if err := a.buildWorld(); err != nil {
		return nil, err
	}

	a.renderSystem.SetShowHelp(settingsManager.GetSettings().ShowHelp)

	return a, nil
}

// buildWorld 构造（或重建）世界和渲染系统
//
// 精灵图生成是一次性启动关注点：失败时不进入更新循环。
func (a *App) buildWorld() error {
	rng := rand.New(rand.NewSource(a.seed))

	world, err := game.NewWorld(a.cfg, rng)
	if err != nil {
		return err
	}

	sheet, err := game.GenerateSpriteSheet(a.cfg)
	if err != nil {
		return fmt.Errorf("精灵图生成失败: %w", err)
	}

	showHelp := true
	if a.renderSystem != nil {
		showHelp = a.renderSystem.ShowHelp()
	}

	a.world = world
	a.renderSystem = systems.NewRenderSystem(
		world.EntityManager(),
		world.AnimationSystem(),
		world.SchedulerSystem(),
		sheet,
		a.cfg,
	)
	a.renderSystem.SetShowHelp(showHelp)

	log.Printf("[App] 世界构造完成 (seed=%d)", a.seed)
	return nil
}

// Update 更新演示逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.cfg.Window.Width, a.cfg.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.cfg.Window.Width, a.cfg.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	a.handleInput()

	if !a.paused {
		a.world.Step()
	}
	return nil
}

// handleInput 处理快捷键
func (a *App) handleInput() {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			a.settingsManager.SetFullscreen(false)
		} else {
			ebiten.SetFullscreen(true)
			a.settingsManager.SetFullscreen(true)
		}
	}

	// H 切换帮助面板
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		show := !a.renderSystem.ShowHelp()
		a.renderSystem.SetShowHelp(show)
		a.settingsManager.SetShowHelp(show)
	}

	// P 暂停/继续
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.paused = !a.paused
		log.Printf("[App] 暂停状态: %v", a.paused)
	}

	// R 重置世界（同配置、同种子，从 tick 0 重跑）
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := a.buildWorld(); err != nil {
			log.Printf("[App] 重置失败: %v", err)
		}
	}
}

// Draw 绘制演示画面
// 每帧调用一次，只读取状态
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	a.renderSystem.Draw(screen, a.world.CurrentTick())
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Window.Width, a.cfg.Window.Height
}

// DemoConfig 返回加载的演示配置
func (a *App) DemoConfig() *config.DemoConfig {
	return a.cfg
}

// World 返回当前世界（验证和测试用）
func (a *App) World() *game.World {
	return a.world
}
