package ledger

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"social-bridge/domain"
	apperrors "social-bridge/errors"
)

// fakeNode answers JSON-RPC calls with canned responses keyed by method.
type fakeNode struct {
	t         *testing.T
	responses map[string]func(params []any) (any, *rpcError)
	calls     []string
}

func (n *fakeNode) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Method string `json:"method"`
			Params []any  `json:"params"`
		}
		require.NoError(n.t, json.NewDecoder(r.Body).Decode(&req))
		n.calls = append(n.calls, req.Method)

		handler, ok := n.responses[req.Method]
		require.True(n.t, ok, "unexpected method %s", req.Method)

		result, rpcErr := handler(req.Params)
		resp := map[string]any{"jsonrpc": "2.0", "id": 1}
		if rpcErr != nil {
			resp["error"] = rpcErr
		} else {
			resp["result"] = result
		}
		require.NoError(n.t, json.NewEncoder(w).Encode(resp))
	}
}

func newTestClient(t *testing.T, node *fakeNode) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(node.handler())
	t.Cleanup(server.Close)
	client := NewClient(server.URL, "confirmed",
		10*time.Millisecond, 200*time.Millisecond, slog.Default())
	return client, server
}

func confirmedStatus(params []any) (any, *rpcError) {
	return map[string]any{
		"value": []any{map[string]any{"confirmationStatus": "confirmed"}},
	}, nil
}

func TestClient_LatestAnchor(t *testing.T) {
	req := require.New(t)
	anchor := [32]byte{1, 2, 3, 4}
	node := &fakeNode{t: t, responses: map[string]func([]any) (any, *rpcError){
		"getLatestBlockhash": func([]any) (any, *rpcError) {
			return map[string]any{"value": map[string]any{
				"blockhash": hex.EncodeToString(anchor[:]),
			}}, nil
		},
	}}
	client, _ := newTestClient(t, node)

	got, err := client.LatestAnchor(context.Background())
	req.NoError(err)
	req.Equal(anchor, got)
}

func TestClient_LatestAnchor_Malformed(t *testing.T) {
	req := require.New(t)
	node := &fakeNode{t: t, responses: map[string]func([]any) (any, *rpcError){
		"getLatestBlockhash": func([]any) (any, *rpcError) {
			return map[string]any{"value": map[string]any{"blockhash": "zz"}}, nil
		},
	}}
	client, _ := newTestClient(t, node)

	_, err := client.LatestAnchor(context.Background())
	req.Error(err)
}

func TestClient_SubmitSigned_MapsExpiredAnchor(t *testing.T) {
	req := require.New(t)
	node := &fakeNode{t: t, responses: map[string]func([]any) (any, *rpcError){
		"sendTransaction": func([]any) (any, *rpcError) {
			return nil, &rpcError{Code: -32002, Message: "Blockhash not found"}
		},
	}}
	client, _ := newTestClient(t, node)

	_, err := client.SubmitSigned(context.Background(), []byte("signed"))
	req.ErrorIs(err, apperrors.ErrAnchorExpired)
}

func TestClient_RequestFunding_ConfirmsAirdrop(t *testing.T) {
	req := require.New(t)
	node := &fakeNode{t: t, responses: map[string]func([]any) (any, *rpcError){
		"requestAirdrop":       func([]any) (any, *rpcError) { return "airdrop-sig", nil },
		"getSignatureStatuses": confirmedStatus,
	}}
	client, _ := newTestClient(t, node)

	recipient, err := domain.NewIdentity("Alice")
	req.NoError(err)

	req.NoError(client.RequestFunding(context.Background(), recipient.PublicKey, 1_000_000_000))
	req.Equal([]string{"requestAirdrop", "getSignatureStatuses"}, node.calls)
}

func TestClient_Confirm_PollsUntilCommitment(t *testing.T) {
	req := require.New(t)
	attempts := 0
	node := &fakeNode{t: t, responses: map[string]func([]any) (any, *rpcError){
		"getSignatureStatuses": func([]any) (any, *rpcError) {
			attempts++
			status := "processed"
			if attempts >= 3 {
				status = "finalized"
			}
			return map[string]any{
				"value": []any{map[string]any{"confirmationStatus": status}},
			}, nil
		},
	}}
	client, _ := newTestClient(t, node)

	req.NoError(client.Confirm(context.Background(), "sig"))
	req.GreaterOrEqual(attempts, 3)
}

func TestClient_Confirm_TimesOut(t *testing.T) {
	req := require.New(t)
	node := &fakeNode{t: t, responses: map[string]func([]any) (any, *rpcError){
		"getSignatureStatuses": func([]any) (any, *rpcError) {
			return map[string]any{"value": []any{nil}}, nil
		},
	}}
	client, _ := newTestClient(t, node)

	err := client.Confirm(context.Background(), "sig")
	req.ErrorIs(err, apperrors.ErrNotConfirmed)
}

func TestClient_Confirm_SurfacesLedgerFailure(t *testing.T) {
	req := require.New(t)
	node := &fakeNode{t: t, responses: map[string]func([]any) (any, *rpcError){
		"getSignatureStatuses": func([]any) (any, *rpcError) {
			return map[string]any{
				"value": []any{map[string]any{
					"confirmationStatus": "processed",
					"err":                map[string]any{"InstructionError": []any{0, "Custom"}},
				}},
			}, nil
		},
	}}
	client, _ := newTestClient(t, node)

	err := client.Confirm(context.Background(), "sig")
	req.Error(err)
	req.NotErrorIs(err, apperrors.ErrNotConfirmed)
}

func TestClient_UnreachableNode(t *testing.T) {
	req := require.New(t)
	node := &fakeNode{t: t, responses: map[string]func([]any) (any, *rpcError){}}
	client, server := newTestClient(t, node)
	server.Close()

	_, err := client.LatestAnchor(context.Background())
	req.ErrorIs(err, apperrors.ErrLedgerUnavailable)
}
