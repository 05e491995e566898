// Package wallet talks to an Ethereum-style JSON-RPC node over a websocket
// to connect an account and mint commemorative tokens.
package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

// Provider performs JSON-RPC calls. result must be a pointer or nil.
type Provider interface {
	Call(ctx context.Context, method string, params []any, result any) error
}

// RPCError is an error object returned by the node.
type RPCError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      *uint64         `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error"`
}

// WSProvider sends one request at a time over a lazily dialed websocket.
// A failed call drops the connection; the next call redials.
type WSProvider struct {
	url     string
	timeout time.Duration

	mu     sync.Mutex
	conn   *websocket.Conn
	nextID uint64
}

func NewWSProvider(url string, timeout time.Duration) *WSProvider {
	return &WSProvider{url: url, timeout: timeout}
}

func (p *WSProvider) Call(ctx context.Context, method string, params []any, result any) error {
	if params == nil {
		params = []any{}
	}
	if _, ok := ctx.Deadline(); !ok && p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil {
		conn, _, err := websocket.Dial(ctx, p.url, nil)
		if err != nil {
			return fmt.Errorf("dial %s: %w", p.url, err)
		}
		p.conn = conn
	}

	p.nextID++
	req := rpcRequest{JSONRPC: "2.0", ID: p.nextID, Method: method, Params: params}

	resp, err := p.roundTrip(ctx, req)
	if err != nil {
		p.dropLocked()
		return fmt.Errorf("%s: %w", method, err)
	}
	if resp.Error != nil {
		return resp.Error
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Result, result); err != nil {
		return fmt.Errorf("%s: decode result: %w", method, err)
	}
	return nil
}

// roundTrip writes req and reads until the matching response arrives.
// Subscription notifications carry no id and are skipped.
func (p *WSProvider) roundTrip(ctx context.Context, req rpcRequest) (*rpcResponse, error) {
	if err := wsjson.Write(ctx, p.conn, req); err != nil {
		return nil, err
	}
	for {
		var resp rpcResponse
		if err := wsjson.Read(ctx, p.conn, &resp); err != nil {
			return nil, err
		}
		if resp.ID == nil || *resp.ID != req.ID {
			continue
		}
		return &resp, nil
	}
}

// Close closes the underlying connection, if any.
func (p *WSProvider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil {
		return nil
	}
	err := p.conn.Close(websocket.StatusNormalClosure, "")
	p.conn = nil
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (p *WSProvider) dropLocked() {
	if p.conn != nil {
		_ = p.conn.CloseNow()
		p.conn = nil
	}
}
