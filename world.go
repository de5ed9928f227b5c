package main

import (
	"fmt"
	"math"
	"math/rand"

	"stardrift/ecs"
	"stardrift/mathx"
)

// hordeState tracks the endless-wave survival mode shown in the HUD.
type hordeState struct {
	active    bool
	wave      int
	elapsed   float64
	nextSpawn float64
}

// GameWorld is the externally-owned simulation the UI layer polls. The
// client embeds a small local sim so every panel has live data to
// mirror; a networked build would feed the same component arrays.
type GameWorld struct {
	ents *ecs.World
	rng  *rand.Rand

	stations []*Station
	horde    hordeState
}

func newGameWorld(rng *rand.Rand) *GameWorld {
	gw := &GameWorld{ents: ecs.NewWorld(), rng: rng}
	gw.populate()
	return gw
}

func (gw *GameWorld) populate() {
	for i := 0; i < 4; i++ {
		gw.spawnEnemy()
	}
	for i := 0; i < 10; i++ {
		e := gw.ents.Spawn()
		gw.ents.SetFaction(e, ecs.FactionAsteroid)
		gw.ents.SetPosition(e, gw.randPos(1500))
		gw.ents.SetVelocity(e, gw.randVel(6))
		gw.ents.SetHealth(e, ecs.Health{Current: 60, Max: 60})
		gw.ents.SetName(e, fmt.Sprintf("Asteroid %d", i+1))
	}
	for i, name := range []string{"Veldt", "Korrin"} {
		e := gw.ents.Spawn()
		gw.ents.SetFaction(e, ecs.FactionPlanet)
		gw.ents.SetPosition(e, mathx.Vec3{X: float64(1200*(i*2 - 1)), Z: -2000})
		gw.ents.SetHealth(e, ecs.Health{Current: 1, Max: 1})
		gw.ents.SetName(e, name)
	}

	gw.stations = []*Station{
		{
			Name:      "Mothership Aurora",
			Pos:       mathx.Vec3{X: 120, Z: -350},
			DockRange: 250,
			Prices: map[Resource]CommodityPrice{
				ResourceCrystal:  {Buy: 14, Sell: 9},
				ResourceTitanium: {Buy: 32, Sell: 24},
			},
		},
		{
			Name:      "Stargate Helios",
			Pos:       mathx.Vec3{X: -900, Z: 400},
			DockRange: 200,
			Prices: map[Resource]CommodityPrice{
				ResourceCrystal:  {Buy: 11, Sell: 8},
				ResourceTitanium: {Buy: 38, Sell: 29},
			},
		},
	}
	for _, st := range gw.stations {
		e := gw.ents.Spawn()
		gw.ents.SetFaction(e, ecs.FactionStation)
		gw.ents.SetPosition(e, st.Pos)
		gw.ents.SetHealth(e, ecs.Health{Current: 1, Max: 1})
		gw.ents.SetName(e, st.Name)
	}
}

func (gw *GameWorld) randPos(radius float64) mathx.Vec3 {
	return mathx.Vec3{
		X: (gw.rng.Float64()*2 - 1) * radius,
		Y: (gw.rng.Float64()*2 - 1) * radius * 0.1,
		Z: (gw.rng.Float64()*2 - 1) * radius,
	}
}

func (gw *GameWorld) randVel(speed float64) mathx.Vec3 {
	a := gw.rng.Float64() * 2 * math.Pi
	return mathx.Vec3{X: math.Cos(a) * speed, Z: math.Sin(a) * speed}
}

var raiderNames = []string{"Raider", "Corsair", "Marauder", "Reaver"}

func (gw *GameWorld) spawnEnemy() ecs.Entity {
	e := gw.ents.Spawn()
	gw.ents.SetFaction(e, ecs.FactionEnemy)
	gw.ents.SetPosition(e, gw.randPos(1200))
	gw.ents.SetVelocity(e, gw.randVel(25))
	hp := 50.0 + 10*float64(gw.horde.wave)
	gw.ents.SetHealth(e, ecs.Health{Current: hp, Max: hp})
	gw.ents.SetName(e, fmt.Sprintf("%s %d", raiderNames[gw.rng.Intn(len(raiderNames))], gw.rng.Intn(90)+10))
	return e
}

// StartHorde begins the endless-wave mode.
func (gw *GameWorld) StartHorde() {
	gw.horde = hordeState{active: true, wave: 1, nextSpawn: 10}
	for i := 0; i < 3; i++ {
		gw.spawnEnemy()
	}
}

// StopHorde ends the mode, leaving spawned enemies in place.
func (gw *GameWorld) StopHorde() {
	gw.horde.active = false
}

// step advances entity motion and horde spawning by dt seconds.
func (gw *GameWorld) step(dt float64, ship *Spaceship) {
	gw.ents.Each(func(e ecs.Entity) {
		f, _ := gw.ents.FactionOf(e)
		p, _ := gw.ents.Position(e)
		v, _ := gw.ents.Velocity(e)
		if f == ecs.FactionEnemy {
			// Enemies loiter toward the player at a gentle closing speed.
			toward := ship.Position.Sub(p).Normalize().Scale(12)
			v = v.Scale(0.98).Add(toward.Scale(0.02))
			gw.ents.SetVelocity(e, v)
		}
		gw.ents.SetPosition(e, p.Add(v.Scale(dt)))
	})

	if !gw.horde.active {
		return
	}
	gw.horde.elapsed += dt
	gw.horde.nextSpawn -= dt
	if gw.horde.nextSpawn <= 0 {
		gw.horde.wave++
		gw.horde.nextSpawn = math.Max(4, 12-float64(gw.horde.wave)*0.5)
		for i := 0; i < 2+gw.horde.wave/3; i++ {
			gw.spawnEnemy()
		}
	}
}
