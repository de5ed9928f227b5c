// Package ecs holds the entity-component store the UI layer polls each
// frame. Components live in dense slices indexed by entity id and are
// reached only through typed accessors; dead entities report absent for
// every component.
package ecs

import "stardrift/mathx"

// Entity is a dense integer id into the component arrays.
type Entity uint32

// NoEntity is returned by lookups that found nothing.
const NoEntity Entity = ^Entity(0)

// Faction tags what kind of object an entity is, in place of
// string-keyed component lookups.
type Faction uint8

const (
	FactionNeutral Faction = iota
	FactionEnemy
	FactionAsteroid
	FactionPlanet
	FactionStation
)

// Health is current and maximum hit points.
type Health struct {
	Current float64
	Max     float64
}

// World owns the component arrays. Entity ids of despawned entities are
// recycled; the alive mask gates every accessor.
type World struct {
	alive []bool
	free  []Entity

	positions  []mathx.Vec3
	velocities []mathx.Vec3
	health     []Health
	factions   []Faction
	names      []string
}

func NewWorld() *World {
	return &World{}
}

// Spawn allocates an entity id, reusing freed ids first.
func (w *World) Spawn() Entity {
	if n := len(w.free); n > 0 {
		e := w.free[n-1]
		w.free = w.free[:n-1]
		w.alive[e] = true
		w.positions[e] = mathx.Vec3{}
		w.velocities[e] = mathx.Vec3{}
		w.health[e] = Health{}
		w.factions[e] = FactionNeutral
		w.names[e] = ""
		return e
	}
	e := Entity(len(w.alive))
	w.alive = append(w.alive, true)
	w.positions = append(w.positions, mathx.Vec3{})
	w.velocities = append(w.velocities, mathx.Vec3{})
	w.health = append(w.health, Health{})
	w.factions = append(w.factions, FactionNeutral)
	w.names = append(w.names, "")
	return e
}

// Despawn frees an entity id for reuse. Despawning a dead or invalid id
// is a no-op.
func (w *World) Despawn(e Entity) {
	if !w.Alive(e) {
		return
	}
	w.alive[e] = false
	w.free = append(w.free, e)
}

func (w *World) Alive(e Entity) bool {
	return int(e) < len(w.alive) && w.alive[e]
}

// Count returns the number of live entities.
func (w *World) Count() int {
	n := 0
	for _, a := range w.alive {
		if a {
			n++
		}
	}
	return n
}

// Each calls fn for every live entity.
func (w *World) Each(fn func(Entity)) {
	for i, a := range w.alive {
		if a {
			fn(Entity(i))
		}
	}
}

func (w *World) Position(e Entity) (mathx.Vec3, bool) {
	if !w.Alive(e) {
		return mathx.Vec3{}, false
	}
	return w.positions[e], true
}

func (w *World) SetPosition(e Entity, p mathx.Vec3) {
	if w.Alive(e) {
		w.positions[e] = p
	}
}

func (w *World) Velocity(e Entity) (mathx.Vec3, bool) {
	if !w.Alive(e) {
		return mathx.Vec3{}, false
	}
	return w.velocities[e], true
}

func (w *World) SetVelocity(e Entity, v mathx.Vec3) {
	if w.Alive(e) {
		w.velocities[e] = v
	}
}

func (w *World) HealthOf(e Entity) (Health, bool) {
	if !w.Alive(e) {
		return Health{}, false
	}
	return w.health[e], true
}

func (w *World) SetHealth(e Entity, h Health) {
	if w.Alive(e) {
		w.health[e] = h
	}
}

// Damage subtracts hp and reports whether the entity is still alive
// afterwards; it despawns the entity when health reaches zero.
func (w *World) Damage(e Entity, hp float64) bool {
	h, ok := w.HealthOf(e)
	if !ok {
		return false
	}
	h.Current -= hp
	if h.Current <= 0 {
		w.Despawn(e)
		return false
	}
	w.health[e] = h
	return true
}

func (w *World) FactionOf(e Entity) (Faction, bool) {
	if !w.Alive(e) {
		return FactionNeutral, false
	}
	return w.factions[e], true
}

func (w *World) SetFaction(e Entity, f Faction) {
	if w.Alive(e) {
		w.factions[e] = f
	}
}

func (w *World) Name(e Entity) (string, bool) {
	if !w.Alive(e) {
		return "", false
	}
	return w.names[e], true
}

func (w *World) SetName(e Entity, n string) {
	if w.Alive(e) {
		w.names[e] = n
	}
}
