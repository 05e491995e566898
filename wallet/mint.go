package wallet

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Ledger is the part of the inventory minting pays from and records to.
// SpendGrains must check and debit atomically.
type Ledger interface {
	SpendGrains(n int) error
	AddGrains(n int) error
	AddToken(tokenID string)
}

// Attribute is an ERC-721 metadata trait.
type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     any    `json:"value"`
}

// Metadata is the ERC-721 JSON document embedded in the mint transaction.
type Metadata struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Attributes  []Attribute `json:"attributes"`
}

// MintRequest describes the journey being commemorated.
type MintRequest struct {
	Realm  string
	Grains int
	Player string
}

// Receipt is the outcome of a successful mint.
type Receipt struct {
	TxHash  string
	TokenID string
	URI     string
}

// Minter turns grains into a commemorative token.
type Minter struct {
	wallet *Wallet
	to     string
	cost   int
	now    func() time.Time
}

func NewMinter(w *Wallet, contract string, cost int) *Minter {
	return &Minter{wallet: w, to: contract, cost: cost, now: time.Now}
}

func (m *Minter) Cost() int {
	return m.cost
}

// BuildMetadata returns the token metadata for req at the given time.
func BuildMetadata(req MintRequest, at time.Time) Metadata {
	return Metadata{
		Name:        fmt.Sprintf("Cooter Journey: %s", req.Realm),
		Description: fmt.Sprintf("%s reached the %s carrying %d Time Grains.", req.Player, req.Realm, req.Grains),
		Attributes: []Attribute{
			{TraitType: "realm", Value: req.Realm},
			{TraitType: "grains", Value: req.Grains},
			{TraitType: "player", Value: req.Player},
			{TraitType: "minted_at", Value: at.UTC().Format(time.RFC3339)},
		},
	}
}

// TokenURI encodes metadata as a base64 JSON data URI.
func TokenURI(md Metadata) (string, error) {
	data, err := json.Marshal(md)
	if err != nil {
		return "", fmt.Errorf("encode metadata: %w", err)
	}
	return "data:application/json;base64," + base64.StdEncoding.EncodeToString(data), nil
}

// Mint reserves the cost from ledger, sends the mint transaction and
// records the new token. A rejected transaction refunds the reservation.
// Once the node accepts the transaction the token is always recorded.
func (m *Minter) Mint(ctx context.Context, ledger Ledger, req MintRequest) (Receipt, error) {
	from := m.wallet.Address()
	if from == "" {
		return Receipt{}, ErrNotConnected
	}

	uri, err := TokenURI(BuildMetadata(req, m.now()))
	if err != nil {
		return Receipt{}, err
	}

	if m.cost > 0 {
		if err := ledger.SpendGrains(m.cost); err != nil {
			return Receipt{}, fmt.Errorf("mint: reserve %d grains: %w", m.cost, err)
		}
	}

	tx := map[string]string{
		"from":  from,
		"to":    m.to,
		"value": "0x0",
		"data":  "0x" + hex.EncodeToString([]byte(uri)),
	}

	var txHash string
	if err := m.wallet.provider.Call(ctx, "eth_sendTransaction", []any{tx}, &txHash); err != nil {
		err = fmt.Errorf("mint: %w", err)
		if m.cost > 0 {
			if refundErr := ledger.AddGrains(m.cost); refundErr != nil {
				err = errors.Join(err, fmt.Errorf("mint: refund %d grains: %w", m.cost, refundErr))
			}
		}
		return Receipt{}, err
	}

	tokenID := tokenIDFromHash(txHash)
	ledger.AddToken(tokenID)
	return Receipt{TxHash: txHash, TokenID: tokenID, URI: uri}, nil
}

func tokenIDFromHash(txHash string) string {
	digits := strings.TrimPrefix(txHash, "0x")
	if len(digits) > 10 {
		digits = digits[:10]
	}
	return "cooter-" + digits
}
