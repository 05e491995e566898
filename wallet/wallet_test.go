package wallet

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/automoto/cooter/store"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

type handlerFunc func(params []json.RawMessage) (any, *RPCError)

// fakeNode is a minimal JSON-RPC websocket node.
type fakeNode struct {
	t        *testing.T
	handlers map[string]handlerFunc

	mu    sync.Mutex
	calls []string
}

func (n *fakeNode) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, nil)
	if err != nil {
		n.t.Errorf("accept: %v", err)
		return
	}
	defer c.CloseNow()

	ctx := r.Context()
	for {
		var req struct {
			ID     uint64            `json:"id"`
			Method string            `json:"method"`
			Params []json.RawMessage `json:"params"`
		}
		if err := wsjson.Read(ctx, c, &req); err != nil {
			return
		}

		n.mu.Lock()
		n.calls = append(n.calls, req.Method)
		n.mu.Unlock()

		// Unrelated subscription traffic the client has to skip.
		_ = wsjson.Write(ctx, c, map[string]any{"jsonrpc": "2.0", "method": "eth_subscription", "params": map[string]any{}})

		resp := map[string]any{"jsonrpc": "2.0", "id": req.ID}
		h, ok := n.handlers[req.Method]
		if !ok {
			resp["error"] = &RPCError{Code: -32601, Message: "method not found"}
		} else if result, rpcErr := h(req.Params); rpcErr != nil {
			resp["error"] = rpcErr
		} else {
			resp["result"] = result
		}
		if err := wsjson.Write(ctx, c, resp); err != nil {
			return
		}
	}
}

func (n *fakeNode) methods() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.calls...)
}

func startNode(t *testing.T, handlers map[string]handlerFunc) (*WSProvider, *fakeNode) {
	t.Helper()
	node := &fakeNode{t: t, handlers: handlers}
	srv := httptest.NewServer(node)
	t.Cleanup(srv.Close)

	p := NewWSProvider("ws"+strings.TrimPrefix(srv.URL, "http"), 2*time.Second)
	t.Cleanup(func() { _ = p.Close() })
	return p, node
}

func accounts(addrs ...string) handlerFunc {
	return func([]json.RawMessage) (any, *RPCError) { return addrs, nil }
}

func constant(v any) handlerFunc {
	return func([]json.RawMessage) (any, *RPCError) { return v, nil }
}

var errLedgerShort = errors.New("ledger: not enough grains")

type fakeLedger struct {
	grains int
	tokens []string
}

func (l *fakeLedger) SpendGrains(n int) error {
	if l.grains < n {
		return errLedgerShort
	}
	l.grains -= n
	return nil
}

func (l *fakeLedger) AddGrains(n int) error {
	l.grains += n
	return nil
}

func (l *fakeLedger) AddToken(id string) { l.tokens = append(l.tokens, id) }

func TestWallet_Connect(t *testing.T) {
	p, _ := startNode(t, map[string]handlerFunc{
		"eth_accounts": accounts("0xabc", "0xdef"),
	})
	w := New(p)

	if w.Connected() {
		t.Fatal("Connected() = true before Connect")
	}
	addr, err := w.Connect(context.Background())
	if err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	if addr != "0xabc" || w.Address() != "0xabc" {
		t.Errorf("Connect() = %q, expected first account 0xabc", addr)
	}

	w.Disconnect()
	if w.Connected() {
		t.Error("Connected() = true after Disconnect")
	}
}

func TestWallet_ConnectNoAccounts(t *testing.T) {
	p, _ := startNode(t, map[string]handlerFunc{
		"eth_accounts": accounts(),
	})

	if _, err := New(p).Connect(context.Background()); !errors.Is(err, ErrNoAccounts) {
		t.Errorf("Connect() error = %v, expected %v", err, ErrNoAccounts)
	}
}

func TestWallet_RequiresConnection(t *testing.T) {
	p, node := startNode(t, map[string]handlerFunc{})
	w := New(p)

	if _, err := w.ChainID(context.Background()); !errors.Is(err, ErrNotConnected) {
		t.Errorf("ChainID() error = %v, expected %v", err, ErrNotConnected)
	}
	if _, err := w.Balance(context.Background()); !errors.Is(err, ErrNotConnected) {
		t.Errorf("Balance() error = %v, expected %v", err, ErrNotConnected)
	}
	if _, err := NewMinter(w, "0xc0", 0).Mint(context.Background(), &fakeLedger{}, MintRequest{}); !errors.Is(err, ErrNotConnected) {
		t.Errorf("Mint() error = %v, expected %v", err, ErrNotConnected)
	}
	if got := node.methods(); len(got) != 0 {
		t.Errorf("node received %v before connect", got)
	}
}

func TestWallet_ChainIDAndBalance(t *testing.T) {
	p, _ := startNode(t, map[string]handlerFunc{
		"eth_accounts":   accounts("0xabc"),
		"eth_chainId":    constant("0x539"),
		"eth_getBalance": constant("0xde0b6b3a7640000"),
	})
	w := New(p)
	ctx := context.Background()
	if _, err := w.Connect(ctx); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}

	id, err := w.ChainID(ctx)
	if err != nil {
		t.Fatalf("ChainID() error = %v", err)
	}
	if id != 1337 {
		t.Errorf("ChainID() = %d, expected 1337", id)
	}

	bal, err := w.Balance(ctx)
	if err != nil {
		t.Fatalf("Balance() error = %v", err)
	}
	if got := FormatEther(bal); got != "1.0000" {
		t.Errorf("FormatEther(Balance()) = %s, expected 1.0000", got)
	}
}

func TestWallet_RPCErrorSurfaces(t *testing.T) {
	p, _ := startNode(t, map[string]handlerFunc{
		"eth_accounts": func([]json.RawMessage) (any, *RPCError) {
			return nil, &RPCError{Code: 4100, Message: "unauthorized"}
		},
	})

	_, err := New(p).Connect(context.Background())
	var rpcErr *RPCError
	if !errors.As(err, &rpcErr) {
		t.Fatalf("Connect() error = %v, expected *RPCError", err)
	}
	if rpcErr.Code != 4100 {
		t.Errorf("Code = %d, expected 4100", rpcErr.Code)
	}
}

func TestWSProvider_DialFailure(t *testing.T) {
	p := NewWSProvider("ws://127.0.0.1:1", 500*time.Millisecond)
	if err := p.Call(context.Background(), "eth_chainId", nil, nil); err == nil {
		t.Error("Call() to closed port returned nil error")
	}
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    uint64
		wantErr bool
	}{
		{"one", "0x1", 1, false},
		{"local", "0x539", 1337, false},
		{"hardhat", "0x7a69", 31337, false},
		{"missing_prefix", "539", 0, true},
		{"empty_digits", "0x", 0, true},
		{"not_hex", "0xzz", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseUint(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseUint(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrBadQuantity) {
				t.Errorf("error = %v, expected %v", err, ErrBadQuantity)
			}
			if got != tt.want {
				t.Errorf("parseUint(%q) = %d, expected %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestMinter_Mint(t *testing.T) {
	var sentTx map[string]string
	p, node := startNode(t, map[string]handlerFunc{
		"eth_accounts": accounts("0xabc"),
		"eth_sendTransaction": func(params []json.RawMessage) (any, *RPCError) {
			if len(params) == 1 {
				_ = json.Unmarshal(params[0], &sentTx)
			}
			return "0x1234567890abcdef", nil
		},
	})
	w := New(p)
	ctx := context.Background()
	if _, err := w.Connect(ctx); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}

	m := NewMinter(w, "0xc0ffee", 10)
	m.now = func() time.Time { return time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC) }
	ledger := &fakeLedger{grains: 12}

	receipt, err := m.Mint(ctx, ledger, MintRequest{Realm: "clocktower", Grains: 12, Player: "Turtle"})
	if err != nil {
		t.Fatalf("Mint() error = %v", err)
	}
	if receipt.TxHash != "0x1234567890abcdef" {
		t.Errorf("TxHash = %q", receipt.TxHash)
	}
	if receipt.TokenID != "cooter-1234567890" {
		t.Errorf("TokenID = %q, expected cooter-1234567890", receipt.TokenID)
	}
	if ledger.grains != 2 {
		t.Errorf("grains after mint = %d, expected 2", ledger.grains)
	}
	if len(ledger.tokens) != 1 || ledger.tokens[0] != receipt.TokenID {
		t.Errorf("ledger tokens = %v, expected [%s]", ledger.tokens, receipt.TokenID)
	}

	if sentTx["from"] != "0xabc" || sentTx["to"] != "0xc0ffee" {
		t.Errorf("tx = %v, unexpected from/to", sentTx)
	}
	raw, err := hex.DecodeString(strings.TrimPrefix(sentTx["data"], "0x"))
	if err != nil {
		t.Fatalf("tx data is not hex: %v", err)
	}
	if string(raw) != receipt.URI {
		t.Errorf("tx data does not carry the token URI")
	}

	payload, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(receipt.URI, "data:application/json;base64,"))
	if err != nil {
		t.Fatalf("URI payload is not base64: %v", err)
	}
	var md Metadata
	if err := json.Unmarshal(payload, &md); err != nil {
		t.Fatalf("URI payload is not metadata: %v", err)
	}
	if md.Name != "Cooter Journey: clocktower" {
		t.Errorf("Name = %q", md.Name)
	}
	if len(md.Attributes) != 4 || md.Attributes[3].Value != "2024-05-01T00:00:00Z" {
		t.Errorf("Attributes = %+v", md.Attributes)
	}

	if got := node.methods(); len(got) != 2 || got[1] != "eth_sendTransaction" {
		t.Errorf("node methods = %v", got)
	}
}

func TestMinter_InsufficientGrainsSkipsRPC(t *testing.T) {
	p, node := startNode(t, map[string]handlerFunc{
		"eth_accounts": accounts("0xabc"),
	})
	w := New(p)
	if _, err := w.Connect(context.Background()); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}

	ledger := &fakeLedger{grains: 3}
	_, err := NewMinter(w, "0xc0", 10).Mint(context.Background(), ledger, MintRequest{Realm: "meadow"})
	if !errors.Is(err, errLedgerShort) {
		t.Errorf("Mint() error = %v, expected %v", err, errLedgerShort)
	}
	if ledger.grains != 3 {
		t.Errorf("grains = %d, expected unchanged 3", ledger.grains)
	}
	if got := node.methods(); len(got) != 1 {
		t.Errorf("node methods = %v, expected only eth_accounts", got)
	}
}

func TestMinter_RejectedTxKeepsGrains(t *testing.T) {
	p, _ := startNode(t, map[string]handlerFunc{
		"eth_accounts": accounts("0xabc"),
		"eth_sendTransaction": func([]json.RawMessage) (any, *RPCError) {
			return nil, &RPCError{Code: -32000, Message: "insufficient funds for gas"}
		},
	})
	w := New(p)
	if _, err := w.Connect(context.Background()); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}

	ledger := &fakeLedger{grains: 20}
	if _, err := NewMinter(w, "0xc0", 10).Mint(context.Background(), ledger, MintRequest{Realm: "meadow"}); err == nil {
		t.Fatal("Mint() error = nil, expected rejected transaction")
	}
	if ledger.grains != 20 || len(ledger.tokens) != 0 {
		t.Errorf("ledger changed after rejected tx: grains=%d tokens=%v", ledger.grains, ledger.tokens)
	}
}

func TestMinter_SpendDuringSendStillRecordsToken(t *testing.T) {
	inv := store.NewInventory(store.NewMemoryKV())
	if err := inv.AddGrains(12); err != nil {
		t.Fatalf("AddGrains() error = %v", err)
	}

	p, _ := startNode(t, map[string]handlerFunc{
		"eth_accounts": accounts("0xabc"),
		"eth_sendTransaction": func([]json.RawMessage) (any, *RPCError) {
			// A market purchase lands while the node is processing the mint.
			if n := inv.Grains(); n > 0 {
				_ = inv.SpendGrains(n)
			}
			return "0xdeadbeefcafe0001", nil
		},
	})
	w := New(p)
	if _, err := w.Connect(context.Background()); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}

	receipt, err := NewMinter(w, "0xc0", 10).Mint(context.Background(), inv, MintRequest{Realm: "meadow"})
	if err != nil {
		t.Fatalf("Mint() error = %v, expected accepted tx to succeed", err)
	}
	if !inv.HasToken(receipt.TokenID) {
		t.Errorf("token %q not recorded, tokens = %v", receipt.TokenID, inv.Tokens())
	}
	if inv.Grains() != 0 {
		t.Errorf("grains = %d, expected 0", inv.Grains())
	}
}

func TestMinter_InventoryShortSurfacesStoreError(t *testing.T) {
	p, node := startNode(t, map[string]handlerFunc{
		"eth_accounts": accounts("0xabc"),
	})
	w := New(p)
	if _, err := w.Connect(context.Background()); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}

	inv := store.NewInventory(store.NewMemoryKV())
	_, err := NewMinter(w, "0xc0", 10).Mint(context.Background(), inv, MintRequest{Realm: "meadow"})
	if !errors.Is(err, store.ErrInsufficientGrains) {
		t.Errorf("Mint() error = %v, expected %v", err, store.ErrInsufficientGrains)
	}
	if got := node.methods(); len(got) != 1 {
		t.Errorf("node methods = %v, expected only eth_accounts", got)
	}
}

func TestMinter_RejectedTxRefundsInventory(t *testing.T) {
	p, _ := startNode(t, map[string]handlerFunc{
		"eth_accounts": accounts("0xabc"),
		"eth_sendTransaction": func([]json.RawMessage) (any, *RPCError) {
			return nil, &RPCError{Code: -32000, Message: "nonce too low"}
		},
	})
	w := New(p)
	if _, err := w.Connect(context.Background()); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}

	inv := store.NewInventory(store.NewMemoryKV())
	if err := inv.AddGrains(15); err != nil {
		t.Fatalf("AddGrains() error = %v", err)
	}
	if _, err := NewMinter(w, "0xc0", 10).Mint(context.Background(), inv, MintRequest{Realm: "meadow"}); err == nil {
		t.Fatal("Mint() error = nil, expected rejected transaction")
	}
	if inv.Grains() != 15 || len(inv.Tokens()) != 0 {
		t.Errorf("inventory after rejected tx: grains=%d tokens=%v", inv.Grains(), inv.Tokens())
	}
}
