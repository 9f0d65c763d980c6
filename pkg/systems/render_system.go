package systems

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/gonewx/spritelab/pkg/components"
	"github.com/gonewx/spritelab/pkg/config"
	"github.com/gonewx/spritelab/pkg/ecs"
	"github.com/gonewx/spritelab/pkg/types"
)

// particleQuadSize 粒子方块边长（像素）
const particleQuadSize = 6

// RenderSystem 渲染角色、粒子和 HUD
//
// 渲染层是纯展示：只读取状态，不产生任何反馈。
// 所有派生值（跳跃偏移、粒子透明度）在这里即时计算，不落库。
type RenderSystem struct {
	entityManager   *ecs.EntityManager
	animationSystem *CharacterAnimationSystem
	schedulerSystem *SchedulerSystem

	// sheet 精灵图：行 = 状态（SheetRow），列 = 帧索引
	sheet      *ebiten.Image
	cellWidth  int
	cellHeight int

	// 角色屏幕基准位置
	baseX, baseY int

	// particleQuad 粒子贴图，共用一张白色方块，按粒子着色
	particleQuad *ebiten.Image

	showHelp bool
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(
	em *ecs.EntityManager,
	animSys *CharacterAnimationSystem,
	schedSys *SchedulerSystem,
	sheet *ebiten.Image,
	cfg *config.DemoConfig,
) *RenderSystem {
	quad := ebiten.NewImage(particleQuadSize, particleQuadSize)
	quad.Fill(color.White)

	return &RenderSystem{
		entityManager:   em,
		animationSystem: animSys,
		schedulerSystem: schedSys,
		sheet:           sheet,
		cellWidth:       cfg.Sheet.CellWidth,
		cellHeight:      cfg.Sheet.CellHeight,
		baseX:           cfg.Character.BaseX,
		baseY:           cfg.Character.BaseY,
		particleQuad:    quad,
		showHelp:        true,
	}
}

// SetShowHelp 设置是否显示 HUD 帮助信息
func (s *RenderSystem) SetShowHelp(show bool) {
	s.showHelp = show
}

// ShowHelp 返回 HUD 帮助信息是否显示
func (s *RenderSystem) ShowHelp() bool {
	return s.showHelp
}

// Draw 绘制一帧
// 只读遍历，update 和 draw 之间没有并发写入
func (s *RenderSystem) Draw(screen *ebiten.Image, currentTick types.Tick) {
	s.drawParticles(screen, currentTick)
	s.drawCharacters(screen, currentTick)
	if s.showHelp {
		s.drawHUD(screen, currentTick)
	}
}

// drawCharacters 绘制所有角色实体的当前帧
func (s *RenderSystem) drawCharacters(screen *ebiten.Image, currentTick types.Tick) {
	entities := ecs.GetEntitiesWith1[*components.CharacterAnimationComponent](s.entityManager)

	for _, id := range entities {
		anim, ok := ecs.GetComponent[*components.CharacterAnimationComponent](s.entityManager, id)
		if !ok {
			continue
		}

		frame := s.frameImage(anim.State, anim.FrameIndex)
		offset := s.animationSystem.JumpOffset(id, currentTick)

		op := &ebiten.DrawImageOptions{}
		// 锚点在单元格底部中心，跳跃偏移只影响纵向
		op.GeoM.Translate(
			float64(s.baseX)-float64(s.cellWidth)/2,
			float64(s.baseY)-float64(s.cellHeight)+offset,
		)
		screen.DrawImage(frame, op)
	}
}

// frameImage 从精灵图中提取指定状态和帧的子图
func (s *RenderSystem) frameImage(state types.CharacterState, frameIndex int) *ebiten.Image {
	x0 := frameIndex * s.cellWidth
	y0 := state.SheetRow() * s.cellHeight
	rect := image.Rect(x0, y0, x0+s.cellWidth, y0+s.cellHeight)
	return s.sheet.SubImage(rect).(*ebiten.Image)
}

// drawParticles 绘制所有粒子（线性淡出的方块）
func (s *RenderSystem) drawParticles(screen *ebiten.Image, currentTick types.Tick) {
	entities := ecs.GetEntitiesWith1[*components.ParticleComponent](s.entityManager)

	for _, id := range entities {
		p, ok := ecs.GetComponent[*components.ParticleComponent](s.entityManager, id)
		if !ok {
			continue
		}

		alpha := Alpha(p, currentTick) / 255.0

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(
			float64(p.X)-particleQuadSize/2,
			float64(p.Y)-particleQuadSize/2,
		)
		op.ColorScale.Scale(0.6, 0.85, 1.0, float32(alpha))
		screen.DrawImage(s.particleQuad, op)
	}
}

// drawHUD 绘制调试信息面板
func (s *RenderSystem) drawHUD(screen *ebiten.Image, currentTick types.Tick) {
	entities := ecs.GetEntitiesWith2[*components.CharacterAnimationComponent, *components.CooldownComponent](s.entityManager)

	for _, id := range entities {
		anim, ok := ecs.GetComponent[*components.CharacterAnimationComponent](s.entityManager, id)
		if !ok {
			continue
		}
		cooldown, _ := ecs.GetComponent[*components.CooldownComponent](s.entityManager, id)

		particleCount := ecs.CountEntitiesWith1[*components.ParticleComponent](s.entityManager)

		text := fmt.Sprintf(
			"tick: %d\nstate: %s (frame %d/%d)\ncooldown: %d\nnext spawn: %d\nparticles: %d\n\n[H] help  [P] pause  [R] reset  [F11] fullscreen",
			currentTick,
			anim.State, anim.FrameIndex, anim.State.FrameCount(),
			cooldown.RemainingTicks,
			s.schedulerSystem.TicksUntilNextSpawn(id, currentTick),
			particleCount,
		)
		ebitenutil.DebugPrintAt(screen, text, 8, 8)
	}
}
