package main

import (
	"testing"

	"stardrift/mathx"
)

func testStation() *Station {
	return &Station{
		Name:      "Mothership Aurora",
		Pos:       mathx.Vec3{X: 100},
		DockRange: 250,
		Prices: map[Resource]CommodityPrice{
			ResourceCrystal:  {Buy: 14, Sell: 9},
			ResourceTitanium: {Buy: 32, Sell: 24},
		},
	}
}

func TestDockedStation(t *testing.T) {
	st := testStation()
	ship := newSpaceship()
	stations := []*Station{st}

	ship.Position = mathx.Vec3{X: 100}
	if dockedStation(stations, ship) != st {
		t.Error("not docked at zero distance")
	}
	ship.Position = mathx.Vec3{X: 100 + st.DockRange}
	if dockedStation(stations, ship) != st {
		t.Error("range boundary should still dock")
	}
	ship.Position = mathx.Vec3{X: 100 + st.DockRange + 1}
	if dockedStation(stations, ship) != nil {
		t.Error("docked beyond range")
	}
}

func TestBuyResource(t *testing.T) {
	st := testStation()
	ship := newSpaceship()
	goldBefore := ship.Balance(ResourceGold)

	if !st.buyResource(ship, ResourceCrystal) {
		t.Fatal("buy refused")
	}
	if got := ship.Balance(ResourceCrystal); got != 250+tradeLot {
		t.Errorf("crystal = %d, want %d", got, 250+tradeLot)
	}
	if got := goldBefore - ship.Balance(ResourceGold); got != 14*tradeLot {
		t.Errorf("paid %d gold, want %d", got, 14*tradeLot)
	}
	if ship.CargoUsed != tradeLot {
		t.Errorf("cargo used = %d, want %d", ship.CargoUsed, tradeLot)
	}
}

func TestBuyResourceRejections(t *testing.T) {
	st := testStation()

	ship := newSpaceship()
	if st.buyResource(ship, ResourceGold) {
		t.Error("gold should not be buyable")
	}

	ship = newSpaceship()
	ship.CargoUsed = ship.CargoMax
	if st.buyResource(ship, ResourceCrystal) {
		t.Error("buy over cargo limit allowed")
	}

	ship = newSpaceship()
	ship.resources[ResourceGold] = 5
	if st.buyResource(ship, ResourceCrystal) {
		t.Error("buy without funds allowed")
	}
	if ship.Balance(ResourceGold) != 5 || ship.CargoUsed != 0 {
		t.Error("failed buy mutated the ship")
	}
}

func TestSellResource(t *testing.T) {
	st := testStation()
	ship := newSpaceship()
	ship.CargoUsed = 20
	goldBefore := ship.Balance(ResourceGold)

	if !st.sellResource(ship, ResourceTitanium) {
		t.Fatal("sell refused")
	}
	if got := ship.Balance(ResourceGold) - goldBefore; got != 24*tradeLot {
		t.Errorf("earned %d gold, want %d", got, 24*tradeLot)
	}
	if got := ship.Balance(ResourceTitanium); got != 100-tradeLot {
		t.Errorf("titanium = %d, want %d", got, 100-tradeLot)
	}
	if ship.CargoUsed != 20-tradeLot {
		t.Errorf("cargo used = %d", ship.CargoUsed)
	}
}

func TestSellResourceRejections(t *testing.T) {
	st := testStation()
	ship := newSpaceship()

	if st.sellResource(ship, ResourceGold) {
		t.Error("gold should not be sellable")
	}
	ship.resources[ResourceCrystal] = tradeLot - 1
	if st.sellResource(ship, ResourceCrystal) {
		t.Error("partial-lot sell allowed")
	}
}

func TestUpgrades(t *testing.T) {
	st := testStation()
	ship := newSpaceship()
	ship.resources[ResourceGold] = 100000

	baseShield := ship.MaxShield
	if !st.upgradeShield(ship) {
		t.Fatal("shield upgrade refused")
	}
	if ship.ShieldTier != 1 || ship.MaxShield != baseShield+40 {
		t.Errorf("tier=%d maxShield=%v", ship.ShieldTier, ship.MaxShield)
	}

	baseCargo := ship.CargoMax
	if !st.upgradeCargo(ship) || ship.CargoMax != baseCargo+25 {
		t.Error("cargo upgrade wrong")
	}
	if !st.upgradeWeapon(ship) || ship.WeaponTier != 1 {
		t.Error("weapon upgrade wrong")
	}
}

func TestUpgradeCostScalesWithTier(t *testing.T) {
	if upgradeCost(0) != 500 || upgradeCost(4) != 2500 {
		t.Errorf("upgradeCost = %d, %d", upgradeCost(0), upgradeCost(4))
	}
}

func TestUpgradeTierCap(t *testing.T) {
	st := testStation()
	ship := newSpaceship()
	ship.resources[ResourceGold] = 1 << 30
	for i := 0; i < maxUpgradeTier; i++ {
		if !st.upgradeShield(ship) {
			t.Fatalf("upgrade %d refused", i)
		}
	}
	if st.upgradeShield(ship) {
		t.Error("upgrade past tier cap allowed")
	}
	if ship.ShieldTier != maxUpgradeTier {
		t.Errorf("tier = %d", ship.ShieldTier)
	}
}

func TestUpgradeInsufficientGold(t *testing.T) {
	st := testStation()
	ship := newSpaceship()
	ship.resources[ResourceGold] = upgradeCost(0) - 1
	if st.upgradeShield(ship) {
		t.Error("upgrade without funds allowed")
	}
	if ship.ShieldTier != 0 {
		t.Error("failed upgrade changed tier")
	}
}

func TestRepairShip(t *testing.T) {
	st := testStation()
	ship := newSpaceship()
	ship.Hull = ship.MaxHull - 30
	goldBefore := ship.Balance(ResourceGold)

	if !st.repairShip(ship) {
		t.Fatal("repair refused")
	}
	if ship.Hull != ship.MaxHull {
		t.Errorf("hull = %v after repair", ship.Hull)
	}
	if got := goldBefore - ship.Balance(ResourceGold); got != 30*repairCost {
		t.Errorf("repair cost %d, want %d", got, 30*repairCost)
	}

	// Intact hull repairs for free.
	goldBefore = ship.Balance(ResourceGold)
	if !st.repairShip(ship) || ship.Balance(ResourceGold) != goldBefore {
		t.Error("intact repair should succeed and cost nothing")
	}
}

func TestRepairInsufficientGold(t *testing.T) {
	st := testStation()
	ship := newSpaceship()
	ship.Hull = 10
	ship.resources[ResourceGold] = 1
	if st.repairShip(ship) {
		t.Error("repair without funds allowed")
	}
	if ship.Hull != 10 {
		t.Error("failed repair changed hull")
	}
}
