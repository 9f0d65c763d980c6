// Package game 组装演示世界：时钟、实体、系统和读取接口
package game

import "github.com/gonewx/spritelab/pkg/types"

// Clock 是唯一的 tick 来源
//
// Advance 是唯一的推进入口，每次恰好 +1，因此 tick 回退在结构上
// 不可能发生，下游不需要防御非单调输入。
type Clock struct {
	// next 下一次 Advance 发放的 tick
	next types.Tick
	// current 最近一次 Advance 发放的 tick，渲染层读取
	current types.Tick
}

// NewClock 创建从 tick 0 开始的时钟
func NewClock() *Clock {
	return &Clock{}
}

// Advance 推进一步并返回本步的 tick
// 首次调用返回 0，之后每次 +1
func (c *Clock) Advance() types.Tick {
	t := c.next
	c.next++
	c.current = t
	return t
}

// Current 返回最近一步的 tick（只读，供渲染使用）
func (c *Clock) Current() types.Tick {
	return c.current
}
