package main

import "testing"

func TestResourceBalances(t *testing.T) {
	s := newSpaceship()
	if s.Balance(ResourceGold) != 1000 {
		t.Fatalf("starting gold = %d", s.Balance(ResourceGold))
	}
	if !s.Debit(ResourceGold, 400) {
		t.Fatal("debit within balance refused")
	}
	if s.Balance(ResourceGold) != 600 {
		t.Errorf("gold after debit = %d, want 600", s.Balance(ResourceGold))
	}
	if s.Debit(ResourceGold, 601) {
		t.Error("overdraft allowed")
	}
	if s.Balance(ResourceGold) != 600 {
		t.Errorf("failed debit changed balance: %d", s.Balance(ResourceGold))
	}
	s.Credit(ResourceCrystal, 50)
	if s.Balance(ResourceCrystal) != 300 {
		t.Errorf("crystal after credit = %d, want 300", s.Balance(ResourceCrystal))
	}
}

func TestResourceNegativeAmounts(t *testing.T) {
	s := newSpaceship()
	if s.Debit(ResourceGold, -5) {
		t.Error("negative debit allowed")
	}
	s.Credit(ResourceGold, -5)
	if s.Balance(ResourceGold) != 1000 {
		t.Errorf("negative credit changed balance: %d", s.Balance(ResourceGold))
	}
}

func TestResourceWallet(t *testing.T) {
	s := newSpaceship()
	w := resourceWallet{ship: s, res: ResourceTitanium}
	if !w.Debit(100) {
		t.Fatal("wallet debit refused")
	}
	if s.Balance(ResourceTitanium) != 0 {
		t.Errorf("titanium = %d, want 0", s.Balance(ResourceTitanium))
	}
	if w.Debit(1) {
		t.Error("wallet overdraft allowed")
	}
	w.Credit(30)
	if s.Balance(ResourceTitanium) != 30 {
		t.Errorf("titanium after credit = %d, want 30", s.Balance(ResourceTitanium))
	}
}

func TestToggles(t *testing.T) {
	s := newSpaceship()
	if !s.ToggleMining() || !s.MiningActive {
		t.Error("first toggle should enable mining")
	}
	if s.ToggleMining() || s.MiningActive {
		t.Error("second toggle should disable mining")
	}
	if !s.ToggleTurret() || !s.ToggleShieldBoost() {
		t.Error("turret/shield toggles should enable")
	}
}

func TestStepEnergyExhaustionDisablesSubsystems(t *testing.T) {
	s := newSpaceship()
	s.Energy = 1
	s.ToggleMining()
	s.ToggleShieldBoost()
	// Combined drain (6/s) exceeds regen (3/s); energy hits zero.
	for i := 0; i < 20; i++ {
		s.step(0.1)
	}
	if s.MiningActive || s.ShieldBoost {
		t.Error("subsystems stayed on with no energy")
	}
}

func TestStepRegenClampedToMax(t *testing.T) {
	s := newSpaceship()
	s.Shield = s.MaxShield - 0.5
	s.step(10)
	if s.Shield != s.MaxShield {
		t.Errorf("shield = %v, want clamped to %v", s.Shield, s.MaxShield)
	}
	if s.Energy > s.MaxEnergy {
		t.Errorf("energy overflowed: %v", s.Energy)
	}
}

func TestStepIntegratesVelocity(t *testing.T) {
	s := newSpaceship()
	s.Velocity.X = 10
	s.step(0.5)
	if s.Position.X != 5 {
		t.Errorf("position.X = %v, want 5", s.Position.X)
	}
}

func TestResourceString(t *testing.T) {
	if ResourceGold.String() != "Gold" || ResourceCrystal.String() != "Crystal" ||
		ResourceTitanium.String() != "Titanium" {
		t.Error("resource names wrong")
	}
	if Resource(99).String() != "Unknown" {
		t.Error("out-of-range resource should be Unknown")
	}
}
