package game

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/spritelab/pkg/config"
	"github.com/gonewx/spritelab/pkg/types"
)

// 程序化精灵图生成
//
// 演示程序不带美术资源，启动时生成一张精灵图：
// 行 = 角色状态（SheetRow），列 = 帧索引。
// 每帧用身体方块 + 帧相关的小偏移画出简单的逐帧变化。

// stateBodyColor 每个状态的身体颜色
func stateBodyColor(state types.CharacterState) color.RGBA {
	switch state {
	case types.StateIdle:
		return color.RGBA{R: 90, G: 170, B: 90, A: 255}
	case types.StateWalking:
		return color.RGBA{R: 90, G: 120, B: 200, A: 255}
	case types.StateJumping:
		return color.RGBA{R: 210, G: 150, B: 70, A: 255}
	}
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}

// GenerateSpriteSheet 生成演示角色的精灵图
//
// 资源获取是一次性的启动关注点：生成失败时演示不应进入更新循环，
// 调用方必须快速失败而不是带着空图继续跑。
func GenerateSpriteSheet(cfg *config.DemoConfig) (*ebiten.Image, error) {
	rgba, err := renderSheetRGBA(cfg)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(rgba), nil
}

// renderSheetRGBA 生成精灵图的像素数据
// 与 ebiten 解耦，方便无窗口环境下测试
func renderSheetRGBA(cfg *config.DemoConfig) (*image.RGBA, error) {
	cellW := cfg.Sheet.CellWidth
	cellH := cfg.Sheet.CellHeight
	if cellW <= 0 || cellH <= 0 {
		return nil, fmt.Errorf("精灵图生成失败: 单元格尺寸非法 (%dx%d)", cellW, cellH)
	}

	states := types.AllCharacterStates()

	maxFrames := 0
	for _, st := range states {
		if st.FrameCount() > maxFrames {
			maxFrames = st.FrameCount()
		}
	}

	sheet := image.NewRGBA(image.Rect(0, 0, cellW*maxFrames, cellH*len(states)))

	for _, st := range states {
		row := st.SheetRow()
		for frame := 0; frame < st.FrameCount(); frame++ {
			drawFrame(sheet, st, frame, cellW, cellH, row)
		}
	}

	return sheet, nil
}

// drawFrame 在精灵图的一个单元格内画一帧
//
// 帧差异策略：
// - Idle: 身体随帧微微起伏（呼吸感）
// - Walking: 身体起伏 + 双脚交替前后
// - Jumping: 身体随帧收缩再展开（蓄力-腾空-落地）
func drawFrame(sheet *image.RGBA, state types.CharacterState, frame, cellW, cellH, row int) {
	cellX := frame * cellW
	cellY := row * cellH

	body := stateBodyColor(state)
	dark := color.RGBA{R: body.R / 2, G: body.G / 2, B: body.B / 2, A: 255}

	// 身体基础矩形（单元格内留边距）
	margin := cellW / 6
	bodyW := cellW - 2*margin
	bodyH := cellH * 2 / 3

	// 帧相关偏移
	bob := 0
	squash := 0
	switch state {
	case types.StateIdle:
		// 0,1,2,3 -> 0,1,2,1 的起伏
		bob = frame
		if frame == 3 {
			bob = 1
		}
	case types.StateWalking:
		bob = frame % 2
	case types.StateJumping:
		squash = (frame % 2) * (cellH / 12)
	}

	bodyRect := image.Rect(
		cellX+margin,
		cellY+cellH-bodyH+bob+squash,
		cellX+cellW-margin,
		cellY+cellH-2,
	)
	draw.Draw(sheet, bodyRect, &image.Uniform{C: body}, image.Point{}, draw.Src)

	// 双脚：行走时交替前后，其他状态对称
	footW := cellW / 8
	footOffset := 0
	if state == types.StateWalking {
		footOffset = (frame%2)*2 - 1 // -1 或 +1 像素
	}
	leftFoot := image.Rect(
		cellX+margin+footOffset, cellY+cellH-2,
		cellX+margin+footW+footOffset, cellY+cellH,
	)
	rightFoot := image.Rect(
		cellX+cellW-margin-footW-footOffset, cellY+cellH-2,
		cellX+cellW-margin-footOffset, cellY+cellH,
	)
	draw.Draw(sheet, leftFoot, &image.Uniform{C: dark}, image.Point{}, draw.Src)
	draw.Draw(sheet, rightFoot, &image.Uniform{C: dark}, image.Point{}, draw.Src)

	// 眼睛：固定在身体上部，给角色一个朝向
	eyeSize := cellW / 12
	if eyeSize < 2 {
		eyeSize = 2
	}
	eyeY := bodyRect.Min.Y + bodyH/4
	eye := image.Rect(
		cellX+cellW/2+bodyW/6, eyeY,
		cellX+cellW/2+bodyW/6+eyeSize, eyeY+eyeSize,
	)
	draw.Draw(sheet, eye, &image.Uniform{C: color.RGBA{A: 255}}, image.Point{}, draw.Src)
}
