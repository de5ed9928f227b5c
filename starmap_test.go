package main

import (
	"sort"
	"testing"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func TestSystemNamesSorted(t *testing.T) {
	nav := newNavigation(newSpaceship())
	names := nav.SystemNames()
	if len(names) != 6 {
		t.Fatalf("got %d systems", len(names))
	}
	coll := collate.New(language.English)
	if !sort.SliceIsSorted(names, func(i, j int) bool {
		return coll.CompareString(names[i], names[j]) < 0
	}) {
		t.Errorf("names not in collated order: %v", names)
	}
	// Œlund must sort with the O's, not after Z.
	if names[len(names)-1] == "Œlund" {
		t.Errorf("accented name sorted by code point: %v", names)
	}
}

func TestTravelToDebitsFuel(t *testing.T) {
	ship := newSpaceship()
	nav := newNavigation(ship)
	if !nav.SetCurrent("Araxis") {
		t.Fatal("SetCurrent failed")
	}
	from := nav.CurrentSystem()
	to := nav.Find("Beacon Reach")
	cost := fuelCostTo(from, to)
	before := ship.Fuel

	if !nav.TravelTo("Beacon Reach") {
		t.Fatal("travel refused")
	}
	if nav.CurrentSystem().Name != "Beacon Reach" {
		t.Errorf("current = %s", nav.CurrentSystem().Name)
	}
	if got := before - ship.Fuel; got != cost {
		t.Errorf("fuel debited %v, want %v", got, cost)
	}
}

func TestTravelToRejections(t *testing.T) {
	ship := newSpaceship()
	nav := newNavigation(ship)
	nav.SetCurrent("Araxis")

	if nav.TravelTo("Araxis") {
		t.Error("travel to current system allowed")
	}
	if nav.TravelTo("Nowhere") {
		t.Error("travel to unknown system allowed")
	}
	ship.Fuel = 0.01
	if nav.TravelTo("Beacon Reach") {
		t.Error("travel without fuel allowed")
	}
	if nav.CurrentSystem().Name != "Araxis" {
		t.Errorf("failed travel moved the ship to %s", nav.CurrentSystem().Name)
	}
	if ship.Fuel != 0.01 {
		t.Errorf("failed travel burned fuel: %v", ship.Fuel)
	}
}

func TestTravelToFiresOnArrive(t *testing.T) {
	ship := newSpaceship()
	nav := newNavigation(ship)
	nav.SetCurrent("Araxis")

	var arrived string
	nav.OnArrive = func(sys *StarSystem) { arrived = sys.Name }
	nav.TravelTo("Drossel")
	if arrived != "Drossel" {
		t.Errorf("OnArrive got %q", arrived)
	}
}

func TestSetCurrentUnknown(t *testing.T) {
	nav := newNavigation(newSpaceship())
	if nav.SetCurrent("Atlantis") {
		t.Error("unknown system accepted")
	}
}

func TestFuelCostSymmetric(t *testing.T) {
	nav := newNavigation(newSpaceship())
	a := nav.Find("Araxis")
	b := nav.Find("Cinder Gate")
	if fuelCostTo(a, b) != fuelCostTo(b, a) {
		t.Error("fuel cost not symmetric")
	}
	if fuelCostTo(a, a) != 0 {
		t.Error("zero-distance jump should cost nothing")
	}
}
