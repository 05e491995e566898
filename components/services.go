package components

import (
	"github.com/automoto/cooter/store"
	"github.com/automoto/cooter/wallet"
	"github.com/yohamta/donburi"
)

// ServicesData hands the long-lived services built in main to systems.
type ServicesData struct {
	KV          store.KV
	Inventory   *store.Inventory
	Leaderboard *store.Leaderboard
	Market      *store.Marketplace
	Settings    *store.Settings
	Wallet      *wallet.Wallet
	Minter      *wallet.Minter
	Provider    *wallet.WSProvider
}

var Services = donburi.NewComponentType[ServicesData]()
