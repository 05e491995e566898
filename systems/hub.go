package systems

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/automoto/cooter/components"
	cfg "github.com/automoto/cooter/config"
	"github.com/automoto/cooter/store"
	"github.com/automoto/cooter/wallet"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHub toggles the hub panel and applies finished wallet jobs. It runs
// after UpdatePause, which ignores input while the hub is open.
func UpdateHub(e *ecs.ECS) {
	hub := GetOrCreateHub(e)
	input := getOrCreateInput(e)

drain:
	for {
		select {
		case res := <-hub.Results:
			applyHubResult(e, hub, res)
		default:
			break drain
		}
	}

	if GetOrCreatePause(e).IsPaused {
		return
	}

	toggle := GetAction(input, cfg.ActionHub).JustPressed
	back := hub.Open && GetAction(input, cfg.ActionMenuBack).JustPressed
	if toggle || back {
		hub.Open = !hub.Open
		hub.Dirty = true
		PlaySFX(e, cfg.SoundMenuSelect)
		if !hub.Open {
			Autosave(e)
		}
	}
}

func applyHubResult(e *ecs.ECS, hub *components.HubData, res components.HubResult) {
	hub.Busy = false
	hub.Dirty = true
	if res.Err != nil {
		log.Printf("Warning: %s: %v", res.Status, res.Err)
		hub.Status = fmt.Sprintf("%s: %s", res.Status, failureReason(res.Err))
		PlaySFX(e, cfg.SoundError)
		return
	}
	hub.Status = res.Status
	if res.Sound != cfg.SoundNone {
		PlaySFX(e, res.Sound)
	}
	Autosave(e)
}

// IsHubOpen reports whether the hub panel is showing.
func IsHubOpen(e *ecs.ECS) bool {
	return GetOrCreateHub(e).Open
}

// runHubJob runs fn off the game thread. Only one job runs at a time.
func runHubJob(e *ecs.ECS, label string, done cfg.SoundID, fn func(ctx context.Context) (string, error)) {
	hub := GetOrCreateHub(e)
	if hub.Busy {
		hub.Status = "Still waiting on the node..."
		return
	}
	hub.Busy = true
	hub.Status = label + "..."
	hub.Dirty = true

	results := hub.Results
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), seconds(cfg.Wallet.CallTimeout)*2)
		defer cancel()

		status, err := fn(ctx)
		if err != nil {
			results <- components.HubResult{Status: label + " failed", Err: err}
			return
		}
		results <- components.HubResult{Status: status, Sound: done}
	}()
}

// HubConnect connects the wallet and reports chain and balance.
func HubConnect(e *ecs.ECS) {
	svc := GetServices(e)
	if svc == nil || svc.Wallet == nil {
		return
	}
	w := svc.Wallet
	runHubJob(e, "Connecting wallet", cfg.SoundMenuSelect, func(ctx context.Context) (string, error) {
		addr, err := w.Connect(ctx)
		if err != nil {
			return "", err
		}
		chainID, err := w.ChainID(ctx)
		if err != nil {
			return "", err
		}
		balance, err := w.Balance(ctx)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Connected %s on chain %d (%s ETH)", shortAddress(addr), chainID, wallet.FormatEther(balance)), nil
	})
}

// HubMint commemorates the current realm as a token.
func HubMint(e *ecs.ECS) {
	svc := GetServices(e)
	if svc == nil || svc.Minter == nil {
		return
	}
	hub := GetOrCreateHub(e)
	if !svc.Wallet.Connected() {
		hub.Status = "Connect a wallet first"
		hub.Dirty = true
		PlaySFX(e, cfg.SoundError)
		return
	}

	req := wallet.MintRequest{
		Grains: svc.Inventory.Grains(),
		Player: svc.Settings.PlayerName,
	}
	if realm := CurrentRealm(e); realm != nil {
		req.Realm = realm.Name
	}

	minter, inv := svc.Minter, svc.Inventory
	runHubJob(e, "Minting", cfg.SoundMint, func(ctx context.Context) (string, error) {
		receipt, err := minter.Mint(ctx, inv, req)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Minted %s (tx %s)", receipt.TokenID, shortAddress(receipt.TxHash)), nil
	})
}

// HubList offers an owned token on the marketplace.
func HubList(e *ecs.ECS, tokenID string) {
	svc := GetServices(e)
	if svc == nil {
		return
	}
	listing, err := svc.Market.List(svc.Inventory, svc.Settings.PlayerName, tokenID, cfg.Store.ListPrice)
	marketOutcome(e, fmt.Sprintf("Listed %s for %d grains", listing.TokenID, listing.Price), "List", err)
}

// HubCancel withdraws one of the player's listings.
func HubCancel(e *ecs.ECS, id int) {
	svc := GetServices(e)
	if svc == nil {
		return
	}
	err := svc.Market.Cancel(svc.Inventory, id, svc.Settings.PlayerName)
	marketOutcome(e, fmt.Sprintf("Listing #%d cancelled", id), "Cancel", err)
}

// HubBuy purchases a listing with grains.
func HubBuy(e *ecs.ECS, id int) {
	svc := GetServices(e)
	if svc == nil {
		return
	}
	listing, err := svc.Market.Buy(svc.Inventory, id, svc.Settings.PlayerName)
	marketOutcome(e, fmt.Sprintf("Bought %s for %d grains", listing.TokenID, listing.Price), "Buy", err)
}

// HubClaim pays out the player's market proceeds.
func HubClaim(e *ecs.ECS) {
	svc := GetServices(e)
	if svc == nil {
		return
	}
	amount := svc.Market.Claim(svc.Inventory, svc.Settings.PlayerName)
	if amount == 0 {
		marketOutcome(e, "", "Claim", errors.New("nothing to claim"))
		return
	}
	marketOutcome(e, fmt.Sprintf("Claimed %d grains", amount), "Claim", nil)
}

func marketOutcome(e *ecs.ECS, status, action string, err error) {
	hub := GetOrCreateHub(e)
	hub.Dirty = true
	if err != nil {
		hub.Status = fmt.Sprintf("%s failed: %s", action, failureReason(err))
		PlaySFX(e, cfg.SoundError)
		return
	}
	hub.Status = status
	PlaySFX(e, cfg.SoundMenuSelect)
	Autosave(e)
}

// failureReason turns store errors into short status text. Mint failures
// surface the inventory's own errors, so they read the same as market ones.
func failureReason(err error) string {
	switch {
	case errors.Is(err, store.ErrInsufficientGrains):
		return "not enough grains"
	case errors.Is(err, store.ErrOwnListing):
		return "that is your own listing"
	case errors.Is(err, store.ErrAlreadyListed):
		return "already listed"
	case errors.Is(err, store.ErrTokenNotOwned):
		return "you do not own that token"
	case errors.Is(err, store.ErrNotSeller):
		return "not your listing"
	}
	return err.Error()
}

// shortAddress abbreviates a hex address or hash for display.
func shortAddress(s string) string {
	if len(s) <= 12 {
		return s
	}
	return s[:6] + "..." + s[len(s)-4:]
}

// GetOrCreateHub returns the singleton Hub component
func GetOrCreateHub(e *ecs.ECS) *components.HubData {
	entry, ok := components.Hub.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Hub))
		components.Hub.SetValue(entry, components.HubData{
			Results: make(chan components.HubResult, 4),
		})
	}
	return components.Hub.Get(entry)
}
