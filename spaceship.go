package main

import (
	"stardrift/ecs"
	"stardrift/mathx"
)

// Resource is one of the three tradable (and wagerable) currencies.
type Resource uint8

const (
	ResourceGold Resource = iota
	ResourceCrystal
	ResourceTitanium
	resourceCount
)

func (r Resource) String() string {
	switch r {
	case ResourceGold:
		return "Gold"
	case ResourceCrystal:
		return "Crystal"
	case ResourceTitanium:
		return "Titanium"
	}
	return "Unknown"
}

func allResources() []Resource {
	return []Resource{ResourceGold, ResourceCrystal, ResourceTitanium}
}

// Spaceship is the player ship the UI polls every frame. The UI reads
// fields directly and writes back only through the explicit methods.
type Spaceship struct {
	Entity ecs.Entity

	Position mathx.Vec3
	Velocity mathx.Vec3
	Yaw      float64

	Hull      float64
	MaxHull   float64
	Shield    float64
	MaxShield float64
	Energy    float64
	MaxEnergy float64
	Fuel      float64
	MaxFuel   float64

	CargoUsed int
	CargoMax  int

	ShieldTier int
	CargoTier  int
	WeaponTier int

	MiningActive bool
	TurretActive bool
	ShieldBoost  bool

	resources [resourceCount]int
}

func newSpaceship() *Spaceship {
	s := &Spaceship{
		Entity:    ecs.NoEntity,
		Hull:      100,
		MaxHull:   100,
		Shield:    80,
		MaxShield: 80,
		Energy:    120,
		MaxEnergy: 120,
		Fuel:      200,
		MaxFuel:   200,
		CargoMax:  50,
	}
	s.resources[ResourceGold] = 1000
	s.resources[ResourceCrystal] = 250
	s.resources[ResourceTitanium] = 100
	return s
}

// Balance returns the held amount of a resource.
func (s *Spaceship) Balance(r Resource) int {
	if r >= resourceCount {
		return 0
	}
	return s.resources[r]
}

// Debit removes amount of a resource, reporting false without change
// when the balance is short.
func (s *Spaceship) Debit(r Resource, amount int) bool {
	if r >= resourceCount || amount < 0 || s.resources[r] < amount {
		return false
	}
	s.resources[r] -= amount
	return true
}

// Credit adds amount of a resource.
func (s *Spaceship) Credit(r Resource, amount int) {
	if r >= resourceCount || amount < 0 {
		return
	}
	s.resources[r] += amount
}

// resourceWallet adapts one ship currency to the blackjack wallet
// contract.
type resourceWallet struct {
	ship *Spaceship
	res  Resource
}

func (w resourceWallet) Debit(amount int) bool { return w.ship.Debit(w.res, amount) }
func (w resourceWallet) Credit(amount int)     { w.ship.Credit(w.res, amount) }

// ToggleMining flips the mining subsystem; mining drains energy while
// active, enforced by the frame update.
func (s *Spaceship) ToggleMining() bool {
	s.MiningActive = !s.MiningActive
	return s.MiningActive
}

func (s *Spaceship) ToggleTurret() bool {
	s.TurretActive = !s.TurretActive
	return s.TurretActive
}

func (s *Spaceship) ToggleShieldBoost() bool {
	s.ShieldBoost = !s.ShieldBoost
	return s.ShieldBoost
}

// step advances ship recovery and subsystem drain by dt seconds.
func (s *Spaceship) step(dt float64) {
	regen := 2.0
	if s.ShieldBoost {
		regen = 6.0
		s.Energy -= 4 * dt
	}
	if s.MiningActive {
		s.Energy -= 2 * dt
	}
	if s.Energy < 0 {
		s.Energy = 0
		s.MiningActive = false
		s.ShieldBoost = false
	}
	if s.Energy < s.MaxEnergy {
		s.Energy += 3 * dt
		if s.Energy > s.MaxEnergy {
			s.Energy = s.MaxEnergy
		}
	}
	if s.Shield < s.MaxShield {
		s.Shield += regen * dt
		if s.Shield > s.MaxShield {
			s.Shield = s.MaxShield
		}
	}
	s.Position = s.Position.Add(s.Velocity.Scale(dt))
}
