package components

import "github.com/gonewx/spritelab/pkg/types"

// ParticleComponent 单个粒子的全部状态
// 位置在生成时确定，之后不再变化；生命周期以 tick 计
// 年龄达到 LifetimeTicks 时由 ParticleSystem 销毁
type ParticleComponent struct {
	// X, Y 世界坐标（生成时固定）
	X, Y int

	// SpawnTick 生成时刻
	SpawnTick types.Tick

	// LifetimeTicks 总生命周期（常量，> 0）
	LifetimeTicks uint64
}
