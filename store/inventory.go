package store

import (
	"slices"
	"sync"
)

const inventoryKey = "inventory"

type inventoryDoc struct {
	Grains    int                 `json:"grains"`
	Collected map[string][]string `json:"collected"` // realm -> grain IDs
	Bounties  []string            `json:"bounties"`  // dialogue IDs already rewarded
	Tokens    []string            `json:"tokens"`
}

// Inventory tracks the player's Time Grains, which grains have been picked
// up in each realm and the commemorative tokens the player owns.
type Inventory struct {
	kv KV

	mu  sync.Mutex
	doc inventoryDoc
}

func NewInventory(kv KV) *Inventory {
	return &Inventory{
		kv:  kv,
		doc: inventoryDoc{Collected: make(map[string][]string)},
	}
}

// Load replaces the in-memory state with the stored document, if any.
func (inv *Inventory) Load() error {
	doc := inventoryDoc{Collected: make(map[string][]string)}
	if err := loadJSON(inv.kv, inventoryKey, &doc); err != nil {
		return err
	}
	if doc.Collected == nil {
		doc.Collected = make(map[string][]string)
	}

	inv.mu.Lock()
	inv.doc = doc
	inv.mu.Unlock()
	return nil
}

func (inv *Inventory) Save() error {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return saveJSON(inv.kv, inventoryKey, inv.doc)
}

func (inv *Inventory) Grains() int {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.doc.Grains
}

func (inv *Inventory) AddGrains(n int) error {
	if n <= 0 {
		return ErrInvalidAmount
	}
	inv.mu.Lock()
	inv.doc.Grains += n
	inv.mu.Unlock()
	return nil
}

// SpendGrains debits n grains, or nothing when the balance is too low.
func (inv *Inventory) SpendGrains(n int) error {
	if n <= 0 {
		return ErrInvalidAmount
	}
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if inv.doc.Grains < n {
		return ErrInsufficientGrains
	}
	inv.doc.Grains -= n
	return nil
}

// MarkCollected records a grain pickup. It returns false when the grain
// was already collected, so each grain pays out once.
func (inv *Inventory) MarkCollected(realm, grainID string) bool {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	ids := inv.doc.Collected[realm]
	if slices.Contains(ids, grainID) {
		return false
	}
	inv.doc.Collected[realm] = append(ids, grainID)
	return true
}

func (inv *Inventory) IsCollected(realm, grainID string) bool {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return slices.Contains(inv.doc.Collected[realm], grainID)
}

// ClaimBounty marks a dialogue bounty as paid. Returns false if it already was.
func (inv *Inventory) ClaimBounty(dialogueID string) bool {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if slices.Contains(inv.doc.Bounties, dialogueID) {
		return false
	}
	inv.doc.Bounties = append(inv.doc.Bounties, dialogueID)
	return true
}

func (inv *Inventory) AddToken(tokenID string) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if !slices.Contains(inv.doc.Tokens, tokenID) {
		inv.doc.Tokens = append(inv.doc.Tokens, tokenID)
	}
}

func (inv *Inventory) RemoveToken(tokenID string) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	i := slices.Index(inv.doc.Tokens, tokenID)
	if i < 0 {
		return ErrTokenNotOwned
	}
	inv.doc.Tokens = slices.Delete(inv.doc.Tokens, i, i+1)
	return nil
}

func (inv *Inventory) HasToken(tokenID string) bool {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return slices.Contains(inv.doc.Tokens, tokenID)
}

// Tokens returns a copy of the owned token IDs in acquisition order.
func (inv *Inventory) Tokens() []string {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return slices.Clone(inv.doc.Tokens)
}
