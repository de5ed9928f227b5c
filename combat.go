package main

import (
	"math"

	"stardrift/ecs"
	"stardrift/mathx"
)

// Weapon describes one mounted weapon the combat overlay reads.
type Weapon struct {
	Name            string
	Damage          float64
	ProjectileSpeed float64
	Cooldown        float64
}

// WeaponSystem tracks the mounted weapons and which is active.
type WeaponSystem struct {
	weapons []Weapon
	active  int
	cool    float64
}

func newWeaponSystem() *WeaponSystem {
	return &WeaponSystem{
		weapons: []Weapon{
			{Name: "Pulse Laser", Damage: 8, ProjectileSpeed: 900, Cooldown: 0.25},
			{Name: "Rail Driver", Damage: 30, ProjectileSpeed: 1500, Cooldown: 1.2},
			{Name: "Plasma Mortar", Damage: 55, ProjectileSpeed: 400, Cooldown: 2.0},
		},
	}
}

// ActiveWeapon returns the selected weapon; never nil.
func (ws *WeaponSystem) ActiveWeapon() *Weapon {
	return &ws.weapons[ws.active]
}

// CycleWeapon selects the next mounted weapon.
func (ws *WeaponSystem) CycleWeapon() *Weapon {
	ws.active = (ws.active + 1) % len(ws.weapons)
	ws.cool = 0
	return ws.ActiveWeapon()
}

// damageNumber is a floating hit readout anchored to a world position;
// it rises and fades on the frame tick.
type damageNumber struct {
	pos    mathx.Vec3
	amount int
	age    float64
}

const damageNumberTTL = 1.2

// CombatSystem owns the lock-on state and the turret fire loop. The
// combat display and overlays poll it; they never mutate entities
// directly.
type CombatSystem struct {
	world   *ecs.World
	ship    *Spaceship
	weapons *WeaponSystem

	lock    ecs.Entity
	numbers []damageNumber
}

func newCombatSystem(world *ecs.World, ship *Spaceship, weapons *WeaponSystem) *CombatSystem {
	return &CombatSystem{world: world, ship: ship, weapons: weapons, lock: ecs.NoEntity}
}

// Lock returns the locked entity and whether the lock is valid.
func (cs *CombatSystem) Lock() (ecs.Entity, bool) {
	if cs.lock == ecs.NoEntity || !cs.world.Alive(cs.lock) {
		return ecs.NoEntity, false
	}
	return cs.lock, true
}

// ClearLock drops the current target.
func (cs *CombatSystem) ClearLock() {
	cs.lock = ecs.NoEntity
}

// EnemyCount returns live hostile entities.
func (cs *CombatSystem) EnemyCount() int {
	n := 0
	cs.world.Each(func(e ecs.Entity) {
		if f, _ := cs.world.FactionOf(e); f == ecs.FactionEnemy {
			n++
		}
	})
	return n
}

// CycleLock locks the nearest enemy, or with an existing lock the next
// nearest beyond it, wrapping back to the nearest.
func (cs *CombatSystem) CycleLock() (ecs.Entity, bool) {
	type cand struct {
		e ecs.Entity
		d float64
	}
	var cands []cand
	cs.world.Each(func(e ecs.Entity) {
		if f, _ := cs.world.FactionOf(e); f != ecs.FactionEnemy {
			return
		}
		p, _ := cs.world.Position(e)
		cands = append(cands, cand{e: e, d: p.Sub(cs.ship.Position).Length()})
	})
	if len(cands) == 0 {
		cs.lock = ecs.NoEntity
		return ecs.NoEntity, false
	}
	// Selection sort by distance; the list is tiny.
	for i := range cands {
		min := i
		for j := i + 1; j < len(cands); j++ {
			if cands[j].d < cands[min].d {
				min = j
			}
		}
		cands[i], cands[min] = cands[min], cands[i]
	}
	if cur, ok := cs.Lock(); ok {
		for i, c := range cands {
			if c.e == cur {
				cs.lock = cands[(i+1)%len(cands)].e
				return cs.lock, true
			}
		}
	}
	cs.lock = cands[0].e
	return cs.lock, true
}

// update advances the fire loop and expires stale state: a dead or
// despawned target silently clears the lock.
func (cs *CombatSystem) update(dt float64) {
	if cs.lock != ecs.NoEntity && !cs.world.Alive(cs.lock) {
		cs.lock = ecs.NoEntity
	}

	out := cs.numbers[:0]
	for _, n := range cs.numbers {
		n.age += dt
		if n.age < damageNumberTTL {
			out = append(out, n)
		}
	}
	cs.numbers = out

	cs.weapons.cool -= dt
	if !cs.ship.TurretActive || cs.weapons.cool > 0 {
		return
	}
	target, ok := cs.Lock()
	if !ok {
		return
	}
	w := cs.weapons.ActiveWeapon()
	pos, _ := cs.world.Position(target)
	if pos.Sub(cs.ship.Position).Length() > turretRange {
		return
	}
	cs.weapons.cool = w.Cooldown
	dmg := w.Damage * (1 + 0.25*float64(cs.ship.WeaponTier))
	cs.numbers = append(cs.numbers, damageNumber{pos: pos, amount: int(math.Round(dmg))})
	if !cs.world.Damage(target, dmg) {
		cs.lock = ecs.NoEntity
		playSound(sndExplosion)
	} else {
		playSound(sndHit)
	}
}

const turretRange = 800.0

// TargetInfo is the lock readout the combat display renders.
type TargetInfo struct {
	Name     string
	Health   ecs.Health
	Distance float64
}

// LockInfo returns the display readout for the current lock.
func (cs *CombatSystem) LockInfo() (TargetInfo, bool) {
	e, ok := cs.Lock()
	if !ok {
		return TargetInfo{}, false
	}
	name, _ := cs.world.Name(e)
	h, _ := cs.world.HealthOf(e)
	p, _ := cs.world.Position(e)
	return TargetInfo{
		Name:     name,
		Health:   h,
		Distance: p.Sub(cs.ship.Position).Length(),
	}, true
}
