package systems

import (
	"math/rand"
	"testing"

	"github.com/gonewx/spritelab/pkg/components"
	"github.com/gonewx/spritelab/pkg/ecs"
	"github.com/gonewx/spritelab/pkg/types"
)

// 测试用默认参数：cooldown=120, spawnInterval=180, cyclePeriod=360
const (
	testCooldown    = 120
	testInterval    = 180
	testCyclePeriod = 360
)

var testBounds = SpawnBounds{X: 100, Y: 100, Width: 600, Height: 400}

// newTestScheduler 组装调度测试环境：一个角色实体挂全部计时组件
func newTestScheduler(t *testing.T) (*ecs.EntityManager, *SchedulerSystem, *ParticleSystem, ecs.EntityID) {
	t.Helper()

	em := ecs.NewEntityManager()
	animSys := NewCharacterAnimationSystem(em, 60, 40)
	particleSys := NewParticleSystem(em, 180)
	rng := rand.New(rand.NewSource(1))
	schedSys := NewSchedulerSystem(em, animSys, particleSys, rng, testCyclePeriod, testBounds)

	id := em.CreateEntity()
	em.AddComponent(id, &components.CharacterAnimationComponent{
		State:              types.StateIdle,
		FrameDurationTicks: 8,
	})
	em.AddComponent(id, &components.CooldownComponent{
		RemainingTicks: 0,
		DurationTicks:  testCooldown,
	})
	em.AddComponent(id, &components.SpawnTimerComponent{
		LastFireTick:  0,
		IntervalTicks: testInterval,
	})

	return em, schedSys, particleSys, id
}

func getCooldown(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.CooldownComponent {
	t.Helper()
	cooldown, ok := ecs.GetComponent[*components.CooldownComponent](em, id)
	if !ok {
		t.Fatal("冷却组件丢失")
	}
	return cooldown
}

// TestTargetStateWindows 自动循环的三个等宽窗口
// 360 tick 周期：0-120 Idle, 120-240 Walking, 240-360 Jumping
func TestTargetStateWindows(t *testing.T) {
	_, sys, _, _ := newTestScheduler(t)

	tests := []struct {
		tick     types.Tick
		expected types.CharacterState
	}{
		{0, types.StateIdle},
		{119, types.StateIdle},
		{120, types.StateWalking},
		{239, types.StateWalking},
		{240, types.StateJumping},
		{359, types.StateJumping},
		{360, types.StateIdle},   // 回绕
		{360 + 240, types.StateJumping}, // 第二个周期
	}

	for _, tt := range tests {
		if got := sys.TargetState(tt.tick); got != tt.expected {
			t.Errorf("TargetState(%d) = %s, 期望 %s", tt.tick, got, tt.expected)
		}
	}
}

// TestCooldownScenario 冷却场景：tick 0 装填 120
// 119 步后剩 1（仍激活），120 步后归 0（不再激活）
func TestCooldownScenario(t *testing.T) {
	em, sys, _, id := newTestScheduler(t)
	cooldown := getCooldown(t, em, id)
	cooldown.RemainingTicks = testCooldown

	for i := 0; i < 119; i++ {
		sys.updateCooldowns()
	}
	if cooldown.RemainingTicks != 1 {
		t.Errorf("119 步后剩余 = %d, 期望 1", cooldown.RemainingTicks)
	}

	sys.updateCooldowns()
	if cooldown.RemainingTicks != 0 {
		t.Errorf("120 步后剩余 = %d, 期望 0", cooldown.RemainingTicks)
	}

	// 归零后继续递减不会变负（uint 下即不再变化）
	sys.updateCooldowns()
	if cooldown.RemainingTicks != 0 {
		t.Errorf("归零后剩余 = %d, 期望保持 0", cooldown.RemainingTicks)
	}
}

// TestCooldownArmedOnJumpEntry 自动循环进入 Jumping 时装填冷却
func TestCooldownArmedOnJumpEntry(t *testing.T) {
	em, sys, _, id := newTestScheduler(t)
	cooldown := getCooldown(t, em, id)

	// tick 240: Jumping 窗口开始
	sys.Update(240)

	anim := getAnim(t, em, id)
	if anim.State != types.StateJumping {
		t.Fatalf("State = %s, 期望 Jumping", anim.State)
	}
	if cooldown.RemainingTicks != testCooldown {
		t.Errorf("进入 Jumping 后冷却 = %d, 期望 %d", cooldown.RemainingTicks, testCooldown)
	}
}

// TestCooldownNotRefreshedWhileActive 冷却进行中再次进入 Jumping 不叠加不刷新
func TestCooldownNotRefreshedWhileActive(t *testing.T) {
	em, sys, _, id := newTestScheduler(t)
	cooldown := getCooldown(t, em, id)
	anim := getAnim(t, em, id)

	sys.Update(240) // 进入 Jumping，装填 120

	// 手动切回 Idle 模拟跳跃完成，冷却尚未走完
	animSys := sys.animationSystem
	animSys.Transition(id, types.StateIdle, 300)
	remaining := cooldown.RemainingTicks
	if remaining == 0 {
		t.Fatal("前置条件失败: 冷却应该还在进行中")
	}

	// 同窗口内自动循环再次进入 Jumping
	sys.Update(301)
	if anim.State != types.StateJumping {
		t.Fatalf("State = %s, 期望重新进入 Jumping", anim.State)
	}
	// updateCooldowns 先递减 1，随后进入 Jumping 不得重新装填
	if cooldown.RemainingTicks != remaining-1 {
		t.Errorf("冷却被刷新: %d, 期望 %d", cooldown.RemainingTicks, remaining-1)
	}
}

// TestSpawnScenario 生成场景：interval=180, lastFire=0
// tick 179 不生成；tick 180 恰好生成一个且 lastFire 变为 180
func TestSpawnScenario(t *testing.T) {
	em, sys, particleSys, id := newTestScheduler(t)

	sys.updateSpawnTimers(179)
	if got := particleSys.Count(); got != 0 {
		t.Errorf("tick 179 生成了 %d 个粒子, 期望 0", got)
	}

	sys.updateSpawnTimers(180)
	if got := particleSys.Count(); got != 1 {
		t.Errorf("tick 180 生成了 %d 个粒子, 期望 1", got)
	}

	timer, _ := ecs.GetComponent[*components.SpawnTimerComponent](em, id)
	if timer.LastFireTick != 180 {
		t.Errorf("LastFireTick = %d, 期望 180", timer.LastFireTick)
	}

	// 同一个 tick 重复评估不会二次触发
	sys.updateSpawnTimers(180)
	if got := particleSys.Count(); got != 1 {
		t.Errorf("同 tick 重复触发: %d 个粒子", got)
	}
}

// TestSpawnAtMostOncePerWindow 每个间隔窗口内至多触发一次
func TestSpawnAtMostOncePerWindow(t *testing.T) {
	_, sys, particleSys, _ := newTestScheduler(t)

	for tick := types.Tick(0); tick < 2*testInterval; tick++ {
		sys.updateSpawnTimers(tick)
	}

	// 窗口 [0,180) 无触发（lastFire=0 起算），180 和 360 前各一次
	if got := particleSys.Count(); got != 1 {
		t.Errorf("360 tick 内生成 %d 个粒子, 期望 1", got)
	}
}

// TestSpawnOvershootAbsorbed 错过的 tick 不会导致补偿性连发
// lastFire 直接设为当前 tick 而不是加一个周期
func TestSpawnOvershootAbsorbed(t *testing.T) {
	em, sys, particleSys, id := newTestScheduler(t)

	// 直接跳到远超一个间隔的 tick（模拟慢步进）
	sys.updateSpawnTimers(500)
	if got := particleSys.Count(); got != 1 {
		t.Fatalf("生成 %d 个粒子, 期望 1", got)
	}

	timer, _ := ecs.GetComponent[*components.SpawnTimerComponent](em, id)
	if timer.LastFireTick != 500 {
		t.Errorf("LastFireTick = %d, 期望 500（吞掉超出部分）", timer.LastFireTick)
	}

	// 下一次触发在 680，不会在 540（500+180 才对，680）提前
	sys.updateSpawnTimers(679)
	if got := particleSys.Count(); got != 1 {
		t.Errorf("tick 679 提前触发: %d 个粒子", got)
	}
	sys.updateSpawnTimers(680)
	if got := particleSys.Count(); got != 2 {
		t.Errorf("tick 680 未触发: %d 个粒子", got)
	}
}

// TestSpawnPositionWithinBounds 粒子位置必须落在配置矩形内
func TestSpawnPositionWithinBounds(t *testing.T) {
	em, sys, _, _ := newTestScheduler(t)

	// 触发多次生成
	for i := 1; i <= 20; i++ {
		sys.updateSpawnTimers(types.Tick(i * testInterval))
	}

	for _, pid := range ecs.GetEntitiesWith1[*components.ParticleComponent](em) {
		p, _ := ecs.GetComponent[*components.ParticleComponent](em, pid)
		if p.X < testBounds.X || p.X >= testBounds.X+testBounds.Width {
			t.Errorf("粒子 X = %d 超出范围 [%d, %d)", p.X, testBounds.X, testBounds.X+testBounds.Width)
		}
		if p.Y < testBounds.Y || p.Y >= testBounds.Y+testBounds.Height {
			t.Errorf("粒子 Y = %d 超出范围 [%d, %d)", p.Y, testBounds.Y, testBounds.Y+testBounds.Height)
		}
	}
}

// TestSchedulerDeterministic 相同种子下两次运行产生相同的粒子位置序列
func TestSchedulerDeterministic(t *testing.T) {
	run := func() []components.ParticleComponent {
		em, sys, _, _ := newTestScheduler(t)
		for i := 1; i <= 5; i++ {
			sys.updateSpawnTimers(types.Tick(i * testInterval))
		}
		var out []components.ParticleComponent
		for _, pid := range ecs.GetEntitiesWith1[*components.ParticleComponent](em) {
			p, _ := ecs.GetComponent[*components.ParticleComponent](em, pid)
			out = append(out, *p)
		}
		return out
	}

	a := run()
	b := run()
	if len(a) != len(b) {
		t.Fatalf("两次运行粒子数不同: %d vs %d", len(a), len(b))
	}

	// 集合无序，按生成 tick 比对位置
	posByTick1 := map[types.Tick][2]int{}
	posByTick2 := map[types.Tick][2]int{}
	for _, p := range a {
		posByTick1[p.SpawnTick] = [2]int{p.X, p.Y}
	}
	for _, p := range b {
		posByTick2[p.SpawnTick] = [2]int{p.X, p.Y}
	}
	for tick, pos := range posByTick1 {
		if posByTick2[tick] != pos {
			t.Errorf("tick %d 位置不一致: %v vs %v", tick, pos, posByTick2[tick])
		}
	}
}

// TestTicksUntilNextSpawn 只读访问器
func TestTicksUntilNextSpawn(t *testing.T) {
	_, sys, _, id := newTestScheduler(t)

	if got := sys.TicksUntilNextSpawn(id, 0); got != testInterval {
		t.Errorf("tick 0 剩余 = %d, 期望 %d", got, uint64(testInterval))
	}
	if got := sys.TicksUntilNextSpawn(id, 100); got != 80 {
		t.Errorf("tick 100 剩余 = %d, 期望 80", got)
	}
	if got := sys.TicksUntilNextSpawn(id, 500); got != 0 {
		t.Errorf("超期剩余 = %d, 期望 0", got)
	}
}
