package store

import (
	"slices"
	"strings"
	"sync"
	"time"
)

const leaderboardKey = "leaderboard"

// Entry is one row of the leaderboard.
type Entry struct {
	Name   string    `json:"name"`
	Grains int       `json:"grains"`
	At     time.Time `json:"at"`
}

// Leaderboard keeps the best Size results, one per player name, ordered by
// grains descending and then by who got there first.
type Leaderboard struct {
	kv   KV
	size int

	mu      sync.Mutex
	entries []Entry
}

func NewLeaderboard(kv KV, size int) *Leaderboard {
	if size <= 0 {
		size = 10
	}
	return &Leaderboard{kv: kv, size: size}
}

func (lb *Leaderboard) Load() error {
	var entries []Entry
	if err := loadJSON(lb.kv, leaderboardKey, &entries); err != nil {
		return err
	}
	sortEntries(entries)
	if len(entries) > lb.size {
		entries = entries[:lb.size]
	}

	lb.mu.Lock()
	lb.entries = entries
	lb.mu.Unlock()
	return nil
}

func (lb *Leaderboard) Save() error {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	return saveJSON(lb.kv, leaderboardKey, lb.entries)
}

// Submit records a result. A name keeps only its best result; a tie with
// the existing entry keeps the earlier one. Returns whether the board changed.
func (lb *Leaderboard) Submit(name string, grains int, at time.Time) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}

	lb.mu.Lock()
	defer lb.mu.Unlock()

	if i := slices.IndexFunc(lb.entries, func(e Entry) bool { return e.Name == name }); i >= 0 {
		if grains <= lb.entries[i].Grains {
			return false
		}
		lb.entries = slices.Delete(lb.entries, i, i+1)
	}

	candidate := Entry{Name: name, Grains: grains, At: at}
	entries := append(lb.entries, candidate)
	sortEntries(entries)
	if len(entries) > lb.size {
		entries = entries[:lb.size]
	}
	lb.entries = entries

	return slices.Contains(lb.entries, candidate)
}

// Entries returns a copy of the board, best first.
func (lb *Leaderboard) Entries() []Entry {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	return slices.Clone(lb.entries)
}

// Rank returns the 1-based position of name, or 0 when it is not on the board.
func (lb *Leaderboard) Rank(name string) int {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	return slices.IndexFunc(lb.entries, func(e Entry) bool { return e.Name == name }) + 1
}

func sortEntries(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		if a.Grains != b.Grains {
			return b.Grains - a.Grains
		}
		return a.At.Compare(b.At)
	})
}
