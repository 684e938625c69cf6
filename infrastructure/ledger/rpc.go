// Package ledger talks to the on-chain node: funding requests, anchor
// lookups, broadcast and confirmation, plus the submitter that signs
// prepared transactions. The node speaks JSON-RPC 2.0 over HTTP.
package ledger

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	apperrors "social-bridge/errors"
)

// Client implements contract.LedgerClient against a single RPC endpoint.
type Client struct {
	endpoint     string
	commitment   string
	httpClient   *http.Client
	pollInterval time.Duration
	confirmAfter time.Duration
	log          *slog.Logger
}

func NewClient(endpoint, commitment string, pollInterval, confirmAfter time.Duration, log *slog.Logger) *Client {
	return &Client{
		endpoint:     endpoint,
		commitment:   commitment,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		pollInterval: pollInterval,
		confirmAfter: confirmAfter,
		log:          log,
	}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

func (c *Client) call(ctx context.Context, method string, params []any, result any) error {
	body, err := json.Marshal(rpcRequest{JSONRPC: "2.0", ID: 1, Method: method, Params: params})
	if err != nil {
		return fmt.Errorf("encoding %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", apperrors.ErrLedgerUnavailable, method, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading %s response: %w", method, err)
	}

	var envelope rpcResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("decoding %s response: %w", method, err)
	}
	if envelope.Error != nil {
		if strings.Contains(strings.ToLower(envelope.Error.Message), "blockhash not found") {
			return fmt.Errorf("%w: %s", apperrors.ErrAnchorExpired, envelope.Error.Message)
		}
		return fmt.Errorf("%s rejected: %s (code %d)", method, envelope.Error.Message, envelope.Error.Code)
	}
	if result != nil {
		if err := json.Unmarshal(envelope.Result, result); err != nil {
			return fmt.Errorf("decoding %s result: %w", method, err)
		}
	}
	return nil
}

// RequestFunding asks the node to credit the recipient and waits for the
// funding transaction to be confirmed.
func (c *Client) RequestFunding(ctx context.Context, recipient ed25519.PublicKey, amount uint64) error {
	var signature string
	if err := c.call(ctx, "requestAirdrop", []any{hex.EncodeToString(recipient), amount}, &signature); err != nil {
		return err
	}
	c.log.Debug("Funding requested", "recipient", hex.EncodeToString(recipient), "amount", amount)
	return c.Confirm(ctx, signature)
}

// LatestAnchor fetches the current network anchor (blockhash).
func (c *Client) LatestAnchor(ctx context.Context) ([32]byte, error) {
	var result struct {
		Value struct {
			Blockhash string `json:"blockhash"`
		} `json:"value"`
	}
	if err := c.call(ctx, "getLatestBlockhash", []any{map[string]string{"commitment": c.commitment}}, &result); err != nil {
		return [32]byte{}, err
	}

	raw, err := hex.DecodeString(result.Value.Blockhash)
	if err != nil || len(raw) != 32 {
		return [32]byte{}, fmt.Errorf("malformed anchor %q", result.Value.Blockhash)
	}
	var anchor [32]byte
	copy(anchor[:], raw)
	return anchor, nil
}

// SubmitSigned broadcasts a signed transaction and returns its signature id.
func (c *Client) SubmitSigned(ctx context.Context, signedTx []byte) (string, error) {
	var signature string
	err := c.call(ctx, "sendTransaction",
		[]any{base64.StdEncoding.EncodeToString(signedTx), map[string]string{"encoding": "base64"}},
		&signature)
	if err != nil {
		return "", err
	}
	return signature, nil
}

// Confirm polls signature status until the configured commitment is
// reached. It gives up after the confirmation window; it never retries
// the transaction itself.
func (c *Client) Confirm(ctx context.Context, signature string) error {
	deadline := time.Now().Add(c.confirmAfter)
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		var result struct {
			Value []*struct {
				ConfirmationStatus string `json:"confirmationStatus"`
				Err                any    `json:"err"`
			} `json:"value"`
		}
		if err := c.call(ctx, "getSignatureStatuses", []any{[]string{signature}}, &result); err != nil {
			return err
		}
		if len(result.Value) > 0 && result.Value[0] != nil {
			status := result.Value[0]
			if status.Err != nil {
				return fmt.Errorf("transaction %s failed on ledger: %v", signature, status.Err)
			}
			if commitmentReached(status.ConfirmationStatus, c.commitment) {
				return nil
			}
		}

		if time.Now().After(deadline) {
			return fmt.Errorf("%w: %s", apperrors.ErrNotConfirmed, signature)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

var commitmentOrder = map[string]int{"processed": 0, "confirmed": 1, "finalized": 2}

func commitmentReached(actual, wanted string) bool {
	return commitmentOrder[actual] >= commitmentOrder[wanted]
}
