// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// Tick 是离散的模拟步计数器，也是本核心唯一的时间基准
//
// Tick 单调不减，由外部时钟每个模拟步恰好推进 1。
// 所有计时都以 Tick 差值表达，不存储任何墙钟时间。
type Tick uint64

// Since 返回从 anchor 到 t 经过的 tick 数
// 调用方保证 t >= anchor（tick 单调不减）
func (t Tick) Since(anchor Tick) uint64 {
	return uint64(t - anchor)
}
