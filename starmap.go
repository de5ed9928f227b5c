package main

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"stardrift/mathx"
)

// StarSystem is one destination on the star map.
type StarSystem struct {
	Name     string
	Pos      mathx.Vec3
	Security string // "core", "frontier" or "lawless"
}

// fuelCostTo returns the fuel needed to jump between two systems,
// linear in map distance.
func fuelCostTo(from, to *StarSystem) float64 {
	const fuelPerUnit = 0.05
	return from.Pos.Sub(to.Pos).Length() * fuelPerUnit
}

// Navigation owns the system list and the ship's current location. The
// star map calls TravelTo with a boolean-success contract; fuel is
// debited on success.
type Navigation struct {
	ship    *Spaceship
	systems []*StarSystem
	current int

	// OnArrive is called after a successful jump.
	OnArrive func(sys *StarSystem)
}

func newNavigation(ship *Spaceship) *Navigation {
	nav := &Navigation{
		ship: ship,
		systems: []*StarSystem{
			{Name: "Araxis", Pos: mathx.Vec3{X: 0, Z: 0}, Security: "core"},
			{Name: "Beacon Reach", Pos: mathx.Vec3{X: 800, Z: 200}, Security: "core"},
			{Name: "Cinder Gate", Pos: mathx.Vec3{X: -400, Z: 900}, Security: "frontier"},
			{Name: "Drossel", Pos: mathx.Vec3{X: 1200, Z: -600}, Security: "frontier"},
			{Name: "Ember Verge", Pos: mathx.Vec3{X: -1100, Z: -300}, Security: "lawless"},
			{Name: "Œlund", Pos: mathx.Vec3{X: 300, Z: 1500}, Security: "lawless"},
		},
	}
	// Locale-aware ordering so accented names sort where players expect
	// them, not by code point.
	coll := collate.New(language.English)
	sort.Slice(nav.systems, func(i, j int) bool {
		return coll.CompareString(nav.systems[i].Name, nav.systems[j].Name) < 0
	})
	return nav
}

// SystemNames returns the names in display order.
func (n *Navigation) SystemNames() []string {
	names := make([]string, len(n.systems))
	for i, s := range n.systems {
		names[i] = s.Name
	}
	return names
}

// Find returns the named system, or nil.
func (n *Navigation) Find(name string) *StarSystem {
	for _, s := range n.systems {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// CurrentSystem returns the system the ship is in.
func (n *Navigation) CurrentSystem() *StarSystem {
	return n.systems[n.current]
}

// SetCurrent jumps to the named system without fuel cost; used when
// restoring the last visited system at startup.
func (n *Navigation) SetCurrent(name string) bool {
	for i, s := range n.systems {
		if s.Name == name {
			n.current = i
			return true
		}
	}
	return false
}

// TravelTo jumps to the named system, debiting fuel. Returns false for
// an unknown system, the current system, or insufficient fuel.
func (n *Navigation) TravelTo(name string) bool {
	for i, s := range n.systems {
		if s.Name != name {
			continue
		}
		if i == n.current {
			return false
		}
		cost := fuelCostTo(n.CurrentSystem(), s)
		if n.ship.Fuel < cost {
			return false
		}
		n.ship.Fuel -= cost
		n.current = i
		if n.OnArrive != nil {
			n.OnArrive(s)
		}
		return true
	}
	return false
}
