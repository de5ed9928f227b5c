package main

import "stardrift/mathx"

// CommodityPrice is a station's buy/sell quote for one resource, in
// gold per unit. Buy is what the player pays, Sell what the station
// pays out.
type CommodityPrice struct {
	Buy  int
	Sell int
}

// Station is a dockable mothership or stargate offering trading,
// upgrades, repair and the blackjack lounge.
type Station struct {
	Name      string
	Pos       mathx.Vec3
	DockRange float64
	Prices    map[Resource]CommodityPrice
}

const tradeLot = 10 // units moved per buy/sell click

// dockedStation returns the station the ship is currently in docking
// range of, or nil.
func dockedStation(stations []*Station, ship *Spaceship) *Station {
	for _, st := range stations {
		if st.Pos.Sub(ship.Position).Length() <= st.DockRange {
			return st
		}
	}
	return nil
}

// buyResource purchases one lot, paying gold. Gold itself is not
// bought. Fails on cargo space or funds.
func (st *Station) buyResource(ship *Spaceship, r Resource) bool {
	price, ok := st.Prices[r]
	if !ok || r == ResourceGold {
		return false
	}
	if ship.CargoUsed+tradeLot > ship.CargoMax {
		return false
	}
	if !ship.Debit(ResourceGold, price.Buy*tradeLot) {
		return false
	}
	ship.Credit(r, tradeLot)
	ship.CargoUsed += tradeLot
	return true
}

// sellResource sells one lot for gold.
func (st *Station) sellResource(ship *Spaceship, r Resource) bool {
	price, ok := st.Prices[r]
	if !ok || r == ResourceGold {
		return false
	}
	if !ship.Debit(r, tradeLot) {
		return false
	}
	ship.Credit(ResourceGold, price.Sell*tradeLot)
	ship.CargoUsed -= tradeLot
	if ship.CargoUsed < 0 {
		ship.CargoUsed = 0
	}
	return true
}

// Upgrade tiers scale cost and benefit linearly; tier is capped.
const maxUpgradeTier = 5

func upgradeCost(tier int) int {
	return 500 * (tier + 1)
}

// upgradeShield buys the next shield tier with gold.
func (st *Station) upgradeShield(ship *Spaceship) bool {
	if ship.ShieldTier >= maxUpgradeTier {
		return false
	}
	if !ship.Debit(ResourceGold, upgradeCost(ship.ShieldTier)) {
		return false
	}
	ship.ShieldTier++
	ship.MaxShield += 40
	return true
}

func (st *Station) upgradeCargo(ship *Spaceship) bool {
	if ship.CargoTier >= maxUpgradeTier {
		return false
	}
	if !ship.Debit(ResourceGold, upgradeCost(ship.CargoTier)) {
		return false
	}
	ship.CargoTier++
	ship.CargoMax += 25
	return true
}

func (st *Station) upgradeWeapon(ship *Spaceship) bool {
	if ship.WeaponTier >= maxUpgradeTier {
		return false
	}
	if !ship.Debit(ResourceGold, upgradeCost(ship.WeaponTier)) {
		return false
	}
	ship.WeaponTier++
	return true
}

// repairCost is gold per point of missing hull.
const repairCost = 2

// repairShip restores full hull for gold; free if already intact.
func (st *Station) repairShip(ship *Spaceship) bool {
	missing := int(ship.MaxHull - ship.Hull)
	if missing <= 0 {
		return true
	}
	if !ship.Debit(ResourceGold, missing*repairCost) {
		return false
	}
	ship.Hull = ship.MaxHull
	return true
}
