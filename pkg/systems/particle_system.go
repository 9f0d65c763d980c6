package systems

import (
	"github.com/gonewx/spritelab/pkg/components"
	"github.com/gonewx/spritelab/pkg/ecs"
	"github.com/gonewx/spritelab/pkg/types"
	"github.com/gonewx/spritelab/pkg/utils"
)

// ParticleSystem 管理粒子的生成和销毁
//
// 粒子是定时销毁的临时实体：生成时记录位置和 tick，位置之后不再变化，
// 年龄达到生命周期时整实体移除。集合无序，粒子之间没有唯一性约束。
type ParticleSystem struct {
	entityManager *ecs.EntityManager

	// lifetimeTicks 所有粒子共用的生命周期
	lifetimeTicks uint64
}

// NewParticleSystem 创建粒子系统
func NewParticleSystem(em *ecs.EntityManager, lifetimeTicks uint64) *ParticleSystem {
	return &ParticleSystem{
		entityManager: em,
		lifetimeTicks: lifetimeTicks,
	}
}

// Spawn 在指定位置生成一个粒子
func (s *ParticleSystem) Spawn(x, y int, spawnTick types.Tick) ecs.EntityID {
	id := s.entityManager.CreateEntity()
	s.entityManager.AddComponent(id, &components.ParticleComponent{
		X:             x,
		Y:             y,
		SpawnTick:     spawnTick,
		LifetimeTicks: s.lifetimeTicks,
	})
	return id
}

// Prune 移除所有过期粒子（age >= lifetime）
//
// 必须在当步生成之后调用：本步刚生成的粒子年龄为 0，
// 至少存活一次渲染。age == lifetime-1 的粒子保留，== lifetime 的移除。
func (s *ParticleSystem) Prune(currentTick types.Tick) {
	entities := ecs.GetEntitiesWith1[*components.ParticleComponent](s.entityManager)

	for _, id := range entities {
		p, ok := ecs.GetComponent[*components.ParticleComponent](s.entityManager, id)
		if !ok {
			continue
		}

		if currentTick.Since(p.SpawnTick) >= p.LifetimeTicks {
			s.entityManager.DestroyEntity(id)
		}
	}

	s.entityManager.RemoveMarkedEntities()
}

// Count 返回当前存活粒子数量（只读）
func (s *ParticleSystem) Count() int {
	return ecs.CountEntitiesWith1[*components.ParticleComponent](s.entityManager)
}

// Alpha 计算粒子当前的透明度（0~255，线性淡出）
//
// alpha = 255 · (1 - age/lifetime)，超出范围时截断。
// 纯派生值，供渲染层使用。
func Alpha(p *components.ParticleComponent, currentTick types.Tick) float64 {
	age := float64(currentTick.Since(p.SpawnTick))
	t := utils.Clamp01(age / float64(p.LifetimeTicks))
	return utils.Lerp(255, 0, t)
}
