package wallet

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"sync"
)

var (
	ErrNotConnected = errors.New("wallet: not connected")
	ErrNoAccounts   = errors.New("wallet: node exposes no accounts")
	ErrBadQuantity  = errors.New("wallet: malformed hex quantity")
)

// Wallet is the player's connection to a node account.
type Wallet struct {
	provider Provider

	mu      sync.RWMutex
	address string
}

func New(provider Provider) *Wallet {
	return &Wallet{provider: provider}
}

// Connect selects the first account the node exposes.
func (w *Wallet) Connect(ctx context.Context) (string, error) {
	var accounts []string
	if err := w.provider.Call(ctx, "eth_accounts", nil, &accounts); err != nil {
		return "", fmt.Errorf("connect: %w", err)
	}
	if len(accounts) == 0 {
		return "", ErrNoAccounts
	}

	w.mu.Lock()
	w.address = accounts[0]
	w.mu.Unlock()
	return accounts[0], nil
}

func (w *Wallet) Disconnect() {
	w.mu.Lock()
	w.address = ""
	w.mu.Unlock()
}

func (w *Wallet) Address() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.address
}

func (w *Wallet) Connected() bool {
	return w.Address() != ""
}

func (w *Wallet) ChainID(ctx context.Context) (uint64, error) {
	if !w.Connected() {
		return 0, ErrNotConnected
	}
	var hex string
	if err := w.provider.Call(ctx, "eth_chainId", nil, &hex); err != nil {
		return 0, fmt.Errorf("chain id: %w", err)
	}
	return parseUint(hex)
}

// Balance returns the account balance in wei.
func (w *Wallet) Balance(ctx context.Context) (*big.Int, error) {
	addr := w.Address()
	if addr == "" {
		return nil, ErrNotConnected
	}
	var hex string
	if err := w.provider.Call(ctx, "eth_getBalance", []any{addr, "latest"}, &hex); err != nil {
		return nil, fmt.Errorf("balance: %w", err)
	}
	return parseBig(hex)
}

func parseUint(s string) (uint64, error) {
	digits, ok := strings.CutPrefix(s, "0x")
	if !ok || digits == "" {
		return 0, fmt.Errorf("%w: %q", ErrBadQuantity, s)
	}
	v, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadQuantity, s)
	}
	return v, nil
}

func parseBig(s string) (*big.Int, error) {
	digits, ok := strings.CutPrefix(s, "0x")
	if !ok || digits == "" {
		return nil, fmt.Errorf("%w: %q", ErrBadQuantity, s)
	}
	v, ok := new(big.Int).SetString(digits, 16)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBadQuantity, s)
	}
	return v, nil
}

// FormatEther renders wei with 4 decimal places for the hub panel.
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0.0000"
	}
	f := new(big.Float).SetInt(wei)
	f.Quo(f, big.NewFloat(1e18))
	return f.Text('f', 4)
}
