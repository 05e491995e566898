package store

import (
	"fmt"
	"slices"
	"sync"
	"time"
)

const marketplaceKey = "marketplace"

// Listing is a commemorative token offered for grains.
type Listing struct {
	ID       int       `json:"id"`
	TokenID  string    `json:"tokenId"`
	Seller   string    `json:"seller"`
	Price    int       `json:"price"`
	ListedAt time.Time `json:"listedAt"`
}

type marketplaceDoc struct {
	NextID   int            `json:"nextId"`
	Listings []Listing      `json:"listings"`
	Proceeds map[string]int `json:"proceeds"` // seller -> unclaimed grains
}

// Marketplace is an escrow-style token market. Listing a token moves it out
// of the seller's inventory; buying moves it into the buyer's and credits
// the seller's proceeds, which are paid out by Claim.
type Marketplace struct {
	kv  KV
	now func() time.Time

	mu  sync.Mutex
	doc marketplaceDoc
}

func NewMarketplace(kv KV) *Marketplace {
	return &Marketplace{
		kv:  kv,
		now: time.Now,
		doc: marketplaceDoc{NextID: 1, Proceeds: make(map[string]int)},
	}
}

func (m *Marketplace) Load() error {
	doc := marketplaceDoc{NextID: 1, Proceeds: make(map[string]int)}
	if err := loadJSON(m.kv, marketplaceKey, &doc); err != nil {
		return err
	}
	if doc.Proceeds == nil {
		doc.Proceeds = make(map[string]int)
	}
	if doc.NextID < 1 {
		doc.NextID = 1
	}

	m.mu.Lock()
	m.doc = doc
	m.mu.Unlock()
	return nil
}

func (m *Marketplace) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return saveJSON(m.kv, marketplaceKey, m.doc)
}

// Seed adds listings from traders that have no inventory of their own.
// It only runs on an empty market so reloading a save does not duplicate them.
func (m *Marketplace) Seed(listings []Listing) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.doc.Listings) > 0 || m.doc.NextID > 1 {
		return
	}
	for _, l := range listings {
		l.ID = m.doc.NextID
		m.doc.NextID++
		if l.ListedAt.IsZero() {
			l.ListedAt = m.now()
		}
		m.doc.Listings = append(m.doc.Listings, l)
	}
}

// List escrows tokenID from inv and offers it at price grains.
func (m *Marketplace) List(inv *Inventory, seller, tokenID string, price int) (Listing, error) {
	if price <= 0 {
		return Listing{}, ErrInvalidAmount
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if slices.ContainsFunc(m.doc.Listings, func(l Listing) bool { return l.TokenID == tokenID }) {
		return Listing{}, ErrAlreadyListed
	}
	if err := inv.RemoveToken(tokenID); err != nil {
		return Listing{}, fmt.Errorf("list %s: %w", tokenID, err)
	}

	l := Listing{
		ID:       m.doc.NextID,
		TokenID:  tokenID,
		Seller:   seller,
		Price:    price,
		ListedAt: m.now(),
	}
	m.doc.NextID++
	m.doc.Listings = append(m.doc.Listings, l)
	return l, nil
}

// Cancel withdraws a listing and returns the token to the seller.
func (m *Marketplace) Cancel(inv *Inventory, id int, seller string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	l := m.doc.Listings[i]
	if l.Seller != seller {
		return ErrNotSeller
	}

	m.doc.Listings = slices.Delete(m.doc.Listings, i, i+1)
	inv.AddToken(l.TokenID)
	return nil
}

// Buy pays for a listing from inv and transfers its token.
func (m *Marketplace) Buy(inv *Inventory, id int, buyer string) (Listing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return Listing{}, ErrNotFound
	}
	l := m.doc.Listings[i]
	if l.Seller == buyer {
		return Listing{}, ErrOwnListing
	}
	if err := inv.SpendGrains(l.Price); err != nil {
		return Listing{}, fmt.Errorf("buy listing %d: %w", id, err)
	}

	m.doc.Listings = slices.Delete(m.doc.Listings, i, i+1)
	m.doc.Proceeds[l.Seller] += l.Price
	inv.AddToken(l.TokenID)
	return l, nil
}

// Claim pays a seller's accumulated proceeds into inv and returns the amount.
func (m *Marketplace) Claim(inv *Inventory, seller string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	amount := m.doc.Proceeds[seller]
	if amount <= 0 {
		return 0
	}
	if err := inv.AddGrains(amount); err != nil {
		return 0
	}
	delete(m.doc.Proceeds, seller)
	return amount
}

// Listings returns open listings, oldest first.
func (m *Marketplace) Listings() []Listing {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.doc.Listings)
}

func (m *Marketplace) indexOf(id int) int {
	return slices.IndexFunc(m.doc.Listings, func(l Listing) bool { return l.ID == id })
}
