package components

import "github.com/gonewx/spritelab/pkg/types"

// SpawnTimerComponent 周期性粒子生成计时器
// 触发条件：currentTick - LastFireTick >= IntervalTicks
// 触发后 LastFireTick 直接设为 currentTick（而不是加一个周期），
// 吞掉超出的部分，错过的 tick 不会导致补偿性连发
type SpawnTimerComponent struct {
	// LastFireTick 上次触发的 tick
	LastFireTick types.Tick

	// IntervalTicks 触发间隔（常量，> 0）
	IntervalTicks uint64
}
