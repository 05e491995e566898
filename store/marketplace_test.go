package store

import (
	"errors"
	"testing"
	"time"
)

func newTestMarket(kv KV) *Marketplace {
	m := NewMarketplace(kv)
	m.now = func() time.Time { return epoch }
	return m
}

func TestMarketplace_ListEscrowsToken(t *testing.T) {
	inv := NewInventory(NewMemoryKV())
	inv.AddToken("cooter-1")
	m := newTestMarket(NewMemoryKV())

	l, err := m.List(inv, "turtle", "cooter-1", 4)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if l.ID != 1 || l.Price != 4 || !l.ListedAt.Equal(epoch) {
		t.Errorf("List() = %+v, unexpected listing", l)
	}
	if inv.HasToken("cooter-1") {
		t.Error("listed token still in seller inventory")
	}
}

func TestMarketplace_ListErrors(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		price    int
		expected error
	}{
		{"zero_price", "cooter-1", 0, ErrInvalidAmount},
		{"not_owned", "cooter-7", 3, ErrTokenNotOwned},
		{"already_listed", "cooter-2", 3, ErrAlreadyListed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := NewInventory(NewMemoryKV())
			inv.AddToken("cooter-1")
			inv.AddToken("cooter-2")
			m := newTestMarket(NewMemoryKV())
			if _, err := m.List(inv, "turtle", "cooter-2", 1); err != nil {
				t.Fatalf("setup List() error = %v", err)
			}
			// A relisted token has to be back in the inventory to reach the duplicate check.
			inv.AddToken("cooter-2")

			if _, err := m.List(inv, "turtle", tt.token, tt.price); !errors.Is(err, tt.expected) {
				t.Errorf("List() error = %v, expected %v", err, tt.expected)
			}
		})
	}
}

func TestMarketplace_Buy(t *testing.T) {
	seller := NewInventory(NewMemoryKV())
	seller.AddToken("cooter-1")
	buyer := NewInventory(NewMemoryKV())
	_ = buyer.AddGrains(10)

	m := newTestMarket(NewMemoryKV())
	l, _ := m.List(seller, "owl", "cooter-1", 6)

	if _, err := m.Buy(buyer, l.ID, "turtle"); err != nil {
		t.Fatalf("Buy() error = %v", err)
	}
	if buyer.Grains() != 4 {
		t.Errorf("buyer Grains() = %d, expected 4", buyer.Grains())
	}
	if !buyer.HasToken("cooter-1") {
		t.Error("buyer did not receive the token")
	}
	if len(m.Listings()) != 0 {
		t.Error("listing still open after purchase")
	}

	if got := m.Claim(seller, "owl"); got != 6 {
		t.Errorf("Claim() = %d, expected 6", got)
	}
	if seller.Grains() != 6 {
		t.Errorf("seller Grains() = %d, expected 6", seller.Grains())
	}
	if got := m.Claim(seller, "owl"); got != 0 {
		t.Errorf("second Claim() = %d, expected 0", got)
	}
}

func TestMarketplace_BuyErrors(t *testing.T) {
	tests := []struct {
		name     string
		id       int
		buyer    string
		grains   int
		expected error
	}{
		{"missing", 99, "turtle", 10, ErrNotFound},
		{"own_listing", 1, "owl", 10, ErrOwnListing},
		{"too_poor", 1, "turtle", 2, ErrInsufficientGrains},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seller := NewInventory(NewMemoryKV())
			seller.AddToken("cooter-1")
			m := newTestMarket(NewMemoryKV())
			if _, err := m.List(seller, "owl", "cooter-1", 5); err != nil {
				t.Fatalf("setup List() error = %v", err)
			}

			buyer := NewInventory(NewMemoryKV())
			_ = buyer.AddGrains(tt.grains)
			if _, err := m.Buy(buyer, tt.id, tt.buyer); !errors.Is(err, tt.expected) {
				t.Errorf("Buy() error = %v, expected %v", err, tt.expected)
			}
			if buyer.Grains() != tt.grains {
				t.Errorf("failed Buy() changed balance to %d", buyer.Grains())
			}
			if len(m.Listings()) != 1 {
				t.Error("failed Buy() removed the listing")
			}
		})
	}
}

func TestMarketplace_Cancel(t *testing.T) {
	inv := NewInventory(NewMemoryKV())
	inv.AddToken("cooter-1")
	m := newTestMarket(NewMemoryKV())
	l, _ := m.List(inv, "turtle", "cooter-1", 3)

	if err := m.Cancel(inv, l.ID, "fox"); !errors.Is(err, ErrNotSeller) {
		t.Errorf("Cancel() by other error = %v, expected %v", err, ErrNotSeller)
	}
	if err := m.Cancel(inv, l.ID, "turtle"); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}
	if !inv.HasToken("cooter-1") {
		t.Error("cancelled token not returned to seller")
	}
	if err := m.Cancel(inv, l.ID, "turtle"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Cancel() error = %v, expected %v", err, ErrNotFound)
	}
}

func TestMarketplace_SeedOnlyOnce(t *testing.T) {
	kv := NewMemoryKV()
	m := newTestMarket(kv)
	seed := []Listing{
		{TokenID: "relic-owl", Seller: "Owl", Price: 12},
		{TokenID: "relic-fox", Seller: "Fox", Price: 20},
	}
	m.Seed(seed)
	m.Seed(seed)

	listings := m.Listings()
	if len(listings) != 2 {
		t.Fatalf("len(Listings()) = %d, expected 2", len(listings))
	}
	if listings[0].ID != 1 || listings[1].ID != 2 {
		t.Errorf("seeded IDs = %d, %d, expected 1, 2", listings[0].ID, listings[1].ID)
	}

	if err := m.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	reloaded := newTestMarket(kv)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	buyer := NewInventory(NewMemoryKV())
	_ = buyer.AddGrains(12)
	if _, err := reloaded.Buy(buyer, 1, "turtle"); err != nil {
		t.Fatalf("Buy() error = %v", err)
	}
	reloaded.Seed(seed)
	if len(reloaded.Listings()) != 1 {
		t.Errorf("Seed() refilled a market that had trades")
	}
}
