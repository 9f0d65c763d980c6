// 计时核心无头验证工具
//
// 不开窗口，直接驱动世界跑固定数量的 tick，
// 校验状态机、冷却、生成和清理的关键时序，任何不符即退出码 1。
//
// 用法：
//
//	go run ./cmd/verify_timing [--ticks=1080] [--seed=1] [--verbose]
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/gonewx/spritelab/pkg/config"
	"github.com/gonewx/spritelab/pkg/game"
	"github.com/gonewx/spritelab/pkg/types"
)

var (
	ticks   = flag.Uint64("ticks", 1080, "驱动的 tick 总数（默认三个完整循环周期）")
	seed    = flag.Int64("seed", 1, "粒子位置随机种子")
	verbose = flag.Bool("verbose", false, "逐事件日志")
)

// verifier 收集运行中的观察值并逐条校验
type verifier struct {
	failures int
}

// checkf 校验一个条件，失败时记录并打印
func (v *verifier) checkf(ok bool, format string, args ...interface{}) {
	if ok {
		if *verbose {
			log.Printf("  ✓ "+format, args...)
		}
		return
	}
	v.failures++
	log.Printf("  ✗ "+format, args...)
}

func main() {
	flag.Parse()
	log.SetFlags(0)

	cfg := config.DefaultConfig()
	world, err := game.NewWorld(cfg, rand.New(rand.NewSource(*seed)))
	if err != nil {
		log.Fatalf("世界构造失败: %v", err)
	}

	log.Printf("=== 计时核心验证: %d ticks, seed=%d ===", *ticks, *seed)

	v := &verifier{}

	prevState := world.CurrentState()
	prevCooldown := world.CooldownRemaining()
	prevParticles := 0
	transitions := 0
	spawns := 0

	for i := uint64(0); i < *ticks; i++ {
		world.Step()
		tick := world.CurrentTick()

		// tick 必须逐一递增
		v.checkf(tick == types.Tick(i), "tick 连续性: 期望 %d 实际 %d", i, tick)

		// 帧索引始终在当前状态帧数范围内
		v.checkf(world.FrameIndex() >= 0 && world.FrameIndex() < world.FrameCount(),
			"帧索引越界: %d (帧数 %d, tick=%d)", world.FrameIndex(), world.FrameCount(), tick)

		// 冷却不为负且每步最多递减 1（装填是 0 -> duration 的跳变）
		cooldown := world.CooldownRemaining()
		if cooldown > prevCooldown {
			v.checkf(prevCooldown == 0 && cooldown == cfg.Timing.CooldownTicks,
				"冷却装填异常: %d -> %d (tick=%d)", prevCooldown, cooldown, tick)
			v.checkf(world.CurrentState() == types.StateJumping,
				"冷却装填时机: 仅进入 Jumping 时装填 (tick=%d, state=%s)", tick, world.CurrentState())
		} else {
			v.checkf(prevCooldown-cooldown <= 1, "冷却递减超过 1: %d -> %d (tick=%d)", prevCooldown, cooldown, tick)
		}
		prevCooldown = cooldown

		// 状态切换后帧索引归零
		state := world.CurrentState()
		if state != prevState {
			transitions++
			v.checkf(world.FrameIndex() == 0, "切换后帧未归零: %s -> %s 帧=%d (tick=%d)",
				prevState, state, world.FrameIndex(), tick)
			if *verbose {
				log.Printf("  tick=%4d 状态切换 %s -> %s", tick, prevState, state)
			}
			prevState = state
		}

		// 生成计时器触发判定：触发步的 elapsed 归零
		fired := tick != 0 && world.TicksUntilNextSpawn() == cfg.Timing.SpawnIntervalTicks
		particles := world.ParticleCount()
		if fired {
			spawns++
			if *verbose {
				log.Printf("  tick=%4d 生成粒子 (存活 %d)", tick, particles)
			}
		}
		// 未触发的步粒子只减不增
		if !fired {
			v.checkf(particles <= prevParticles, "未触发却新增粒子: %d -> %d (tick=%d)", prevParticles, particles, tick)
		}
		prevParticles = particles

		// 非 Jumping 状态不允许有跳跃偏移
		if state != types.StateJumping {
			v.checkf(world.JumpOffset() == 0, "非跳跃状态存在跳跃偏移: %.2f (tick=%d)", world.JumpOffset(), tick)
		}
	}

	// 整体性校验
	cycle := cfg.Timing.CyclePeriodTicks
	fullCycles := *ticks / cycle
	// 每个循环周期：Idle->Walking->Jumping 加上跳跃完成回 Idle 再重入 Jumping
	v.checkf(transitions >= int(fullCycles*3),
		"状态切换次数过少: %d 次 / %d 个周期", transitions, fullCycles)

	// 生成间隔 180：首次在 tick 180，之后每 180 一次
	expectedSpawns := int((*ticks - 1) / cfg.Timing.SpawnIntervalTicks)
	v.checkf(spawns == expectedSpawns, "粒子生成次数: 期望 %d 实际 %d", expectedSpawns, spawns)

	fmt.Println()
	if v.failures > 0 {
		log.Printf("✗ 验证失败: %d 处不符", v.failures)
		os.Exit(1)
	}
	log.Printf("✓ 验证通过: %d ticks, %d 次状态切换, %d 次粒子生成", *ticks, transitions, spawns)
}
