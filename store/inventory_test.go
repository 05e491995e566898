package store

import (
	"errors"
	"testing"
)

func TestInventory_Grains(t *testing.T) {
	inv := NewInventory(NewMemoryKV())

	if err := inv.AddGrains(5); err != nil {
		t.Fatalf("AddGrains() error = %v", err)
	}
	if err := inv.SpendGrains(3); err != nil {
		t.Fatalf("SpendGrains() error = %v", err)
	}
	if got := inv.Grains(); got != 2 {
		t.Errorf("Grains() = %d, expected 2", got)
	}

	if err := inv.SpendGrains(3); !errors.Is(err, ErrInsufficientGrains) {
		t.Errorf("SpendGrains(3) error = %v, expected %v", err, ErrInsufficientGrains)
	}
	if got := inv.Grains(); got != 2 {
		t.Errorf("failed spend changed balance to %d", got)
	}
}

func TestInventory_InvalidAmounts(t *testing.T) {
	inv := NewInventory(NewMemoryKV())

	tests := []struct {
		name string
		fn   func(int) error
		n    int
	}{
		{"add_zero", inv.AddGrains, 0},
		{"add_negative", inv.AddGrains, -1},
		{"spend_zero", inv.SpendGrains, 0},
		{"spend_negative", inv.SpendGrains, -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.fn(tt.n); !errors.Is(err, ErrInvalidAmount) {
				t.Errorf("error = %v, expected %v", err, ErrInvalidAmount)
			}
		})
	}
}

func TestInventory_MarkCollectedOnce(t *testing.T) {
	inv := NewInventory(NewMemoryKV())

	if !inv.MarkCollected("meadow", "g1") {
		t.Fatal("first MarkCollected() = false, expected true")
	}
	if inv.MarkCollected("meadow", "g1") {
		t.Error("second MarkCollected() = true, expected false")
	}
	if !inv.IsCollected("meadow", "g1") {
		t.Error("IsCollected(meadow, g1) = false, expected true")
	}
	if inv.IsCollected("clocktower", "g1") {
		t.Error("grain IDs should be scoped per realm")
	}
}

func TestInventory_ClaimBountyOnce(t *testing.T) {
	inv := NewInventory(NewMemoryKV())

	if !inv.ClaimBounty("owl_riddle") {
		t.Fatal("first ClaimBounty() = false, expected true")
	}
	if inv.ClaimBounty("owl_riddle") {
		t.Error("second ClaimBounty() = true, expected false")
	}
}

func TestInventory_Tokens(t *testing.T) {
	inv := NewInventory(NewMemoryKV())

	inv.AddToken("cooter-1")
	inv.AddToken("cooter-1")
	inv.AddToken("cooter-2")

	if got := inv.Tokens(); len(got) != 2 {
		t.Fatalf("Tokens() = %v, expected 2 tokens", got)
	}
	if !inv.HasToken("cooter-2") {
		t.Error("HasToken(cooter-2) = false, expected true")
	}
	if err := inv.RemoveToken("cooter-1"); err != nil {
		t.Fatalf("RemoveToken() error = %v", err)
	}
	if err := inv.RemoveToken("cooter-1"); !errors.Is(err, ErrTokenNotOwned) {
		t.Errorf("RemoveToken() error = %v, expected %v", err, ErrTokenNotOwned)
	}
}

func TestInventory_SaveLoad(t *testing.T) {
	kv := NewMemoryKV()
	inv := NewInventory(kv)
	_ = inv.AddGrains(7)
	inv.MarkCollected("meadow", "g3")
	inv.AddToken("cooter-9")
	inv.ClaimBounty("frog_pond")

	if err := inv.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded := NewInventory(kv)
	if err := loaded.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Grains() != 7 {
		t.Errorf("Grains() = %d, expected 7", loaded.Grains())
	}
	if !loaded.IsCollected("meadow", "g3") {
		t.Error("collected grain lost across save")
	}
	if !loaded.HasToken("cooter-9") {
		t.Error("token lost across save")
	}
	if loaded.ClaimBounty("frog_pond") {
		t.Error("claimed bounty lost across save")
	}
}

func TestInventory_LoadEmpty(t *testing.T) {
	inv := NewInventory(NewMemoryKV())
	if err := inv.Load(); err != nil {
		t.Fatalf("Load() on empty store error = %v", err)
	}
	if inv.Grains() != 0 {
		t.Errorf("Grains() = %d, expected 0", inv.Grains())
	}
	if !inv.MarkCollected("meadow", "g1") {
		t.Error("MarkCollected() after empty load = false, expected true")
	}
}

func TestInventory_LoadCorrupt(t *testing.T) {
	kv := NewMemoryKV()
	_ = kv.Put(inventoryKey, []byte("{not json"))

	if err := NewInventory(kv).Load(); err == nil {
		t.Error("Load() of corrupt document returned nil error")
	}
}
