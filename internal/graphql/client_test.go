// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package graphql

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-contact-keeper/internal/adapter"
	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/crypto"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
)

const (
	testPath    = "/api-gateway/"
	testHashKey = "testhashkey"
	testToken   = "test-token"
)

// fakeAPI is a minimal GraphQL endpoint. It records the last request and
// answers with whatever respond returns.
type fakeAPI struct {
	hits    atomic.Int32
	mu      sync.Mutex
	body    []byte
	header  http.Header
	respond func(op adapter.Operation) (int, any)
}

func (f *fakeAPI) last() ([]byte, http.Header) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.body, f.header
}

func (f *fakeAPI) router() http.Handler {
	r := chi.NewRouter()
	r.Post(testPath, func(w http.ResponseWriter, r *http.Request) {
		f.hits.Add(1)
		body, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.header = r.Header.Clone()
		f.body = body
		f.mu.Unlock()

		var op adapter.Operation
		_ = json.Unmarshal(body, &op)

		status, payload := f.respond(op)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		switch p := payload.(type) {
		case string:
			_, _ = w.Write([]byte(p))
		default:
			_ = json.NewEncoder(w).Encode(p)
		}
	})
	return r
}

// echoCreate stores nothing and returns the forwarded input as the created
// contact, like a server that persists ciphertext verbatim.
func echoCreate(op adapter.Operation) (int, any) {
	in, _ := op.Variables["createContactInput"].(map[string]any)
	out := map[string]any{"_id": "c1"}
	for k, v := range in {
		out[k] = v
	}
	return http.StatusOK, map[string]any{"data": map[string]any{adapter.CreateContactName: out}}
}

func newTestClient(t *testing.T, kp crypto.KeyPair, opts adapter.Options, respond func(adapter.Operation) (int, any)) (Client, *fakeAPI) {
	t.Helper()
	api := &fakeAPI{respond: respond}
	srv := httptest.NewServer(api.router())
	t.Cleanup(srv.Close)

	d := adapter.NewDispatcher(kp, adapter.NewDefaultRegistry(kp, opts), logger.Nop())
	c, err := NewClient(
		config.ClientAdapter{HTTPAddress: srv.URL, GraphQLPath: testPath, RequestTimeout: 5 * time.Second, Token: "Bearer " + testToken},
		config.ClientApp{HashKey: testHashKey},
		d,
		logger.Nop(),
	)
	require.NoError(t, err)
	return c, api
}

func createOp(input map[string]any) adapter.Operation {
	return adapter.Operation{
		Name:      adapter.CreateContactName,
		Query:     "mutation createContact($createContactInput: CreateContactInput!) { createContact(createContactInput: $createContactInput) { _id name } }",
		Variables: map[string]any{"createContactInput": input},
	}
}

func TestExecute_CreateContactRoundTrip(t *testing.T) {
	kp, err := crypto.GenerateKeyPair()
	require.NoError(t, err)
	c, api := newTestClient(t, kp, adapter.Options{}, echoCreate)

	resp, err := c.Execute(context.Background(), createOp(map[string]any{
		"name":    "Alice",
		"address": "1 Main St",
		"emails":  []any{"a@example.com", "b@example.com"},
		"blurb":   "met at a conference",
	}))
	require.NoError(t, err)

	// the wire carries ciphertext and the search token
	body, _ := api.last()
	var sent adapter.Operation
	require.NoError(t, json.Unmarshal(body, &sent))
	in := sent.Variables["createContactInput"].(map[string]any)
	assert.NotEqual(t, "Alice", in["name"])
	assert.NotEqual(t, "1 Main St", in["address"])
	assert.Equal(t, "met at a conference", in["blurb"])
	assert.Equal(t, map[string]any{"name": crypto.ComputeToken("Alice", kp.Private())}, in["hmacs"])

	// what comes back is plaintext again
	got := resp.Data[adapter.CreateContactName].(map[string]any)
	assert.Equal(t, "c1", got["_id"])
	assert.Equal(t, "Alice", got["name"])
	assert.Equal(t, "1 Main St", got["address"])
	assert.Equal(t, []any{"a@example.com", "b@example.com"}, got["emails"])
}

func TestExecute_Headers(t *testing.T) {
	kp, err := crypto.GenerateKeyPair()
	require.NoError(t, err)
	c, api := newTestClient(t, kp, adapter.Options{}, echoCreate)

	ctx := utils.WithRequestID(context.Background(), "req-123")
	_, err = c.Execute(ctx, createOp(map[string]any{"name": "Alice"}))
	require.NoError(t, err)

	body, header := api.last()
	assert.Equal(t, "req-123", header.Get(HeaderRequestID))
	assert.Equal(t, "Bearer "+testToken, header.Get("Authorization"))
	assert.Equal(t, utils.HashString(string(body), testHashKey), header.Get(HeaderHash))
	assert.Equal(t, "application/json", header.Get("Content-Type"))
}

func TestExecute_GeneratesRequestID(t *testing.T) {
	kp, err := crypto.GenerateKeyPair()
	require.NoError(t, err)
	c, api := newTestClient(t, kp, adapter.Options{}, echoCreate)

	_, err = c.Execute(context.Background(), createOp(map[string]any{"name": "Alice"}))
	require.NoError(t, err)

	_, header := api.last()
	assert.Len(t, header.Get(HeaderRequestID), 36)
}

func TestExecute_BypassSendsPlaintext(t *testing.T) {
	kp, err := crypto.GenerateKeyPair()
	require.NoError(t, err)
	publicOnly := crypto.NewPublicKeyPair(kp.Public())
	c, api := newTestClient(t, publicOnly, adapter.Options{}, echoCreate)

	resp, err := c.Execute(context.Background(), createOp(map[string]any{"name": "Alice"}))
	require.NoError(t, err)

	body, _ := api.last()
	var sent adapter.Operation
	require.NoError(t, json.Unmarshal(body, &sent))
	in := sent.Variables["createContactInput"].(map[string]any)
	assert.Equal(t, "Alice", in["name"])
	assert.NotContains(t, in, "hmacs")
	assert.Equal(t, "Alice", resp.Data[adapter.CreateContactName].(map[string]any)["name"])
}

func TestExecute_StrictAbortsBeforeSend(t *testing.T) {
	kp, err := crypto.GenerateKeyPair()
	require.NoError(t, err)
	c, api := newTestClient(t, kp, adapter.Options{Strict: true}, echoCreate)

	_, err = c.Execute(context.Background(), createOp(map[string]any{"name": "Alice", "address": 42}))

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrPlaintextLeak)
	assert.Zero(t, api.hits.Load(), "nothing may reach the network")
}

func TestExecute_HTTPErrors(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{status: http.StatusBadRequest, want: ErrBadRequest},
		{status: http.StatusUnauthorized, want: ErrUnauthorized},
		{status: http.StatusForbidden, want: ErrForbidden},
		{status: http.StatusNotFound, want: ErrNotFound},
		{status: http.StatusConflict, want: ErrConflict},
		{status: http.StatusInternalServerError, want: ErrInternalServerError},
		{status: http.StatusBadGateway, want: ErrBadGateway},
	}

	kp, err := crypto.GenerateKeyPair()
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c, _ := newTestClient(t, kp, adapter.Options{}, func(adapter.Operation) (int, any) {
				return tt.status, "boom"
			})

			_, err := c.Execute(context.Background(), createOp(map[string]any{"name": "Alice"}))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "boom")
		})
	}
}

func TestExecute_UnmappedStatus(t *testing.T) {
	kp, err := crypto.GenerateKeyPair()
	require.NoError(t, err)
	c, _ := newTestClient(t, kp, adapter.Options{}, func(adapter.Operation) (int, any) {
		return http.StatusTeapot, ""
	})

	_, err = c.Execute(context.Background(), createOp(map[string]any{"name": "Alice"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestExecute_GraphQLErrors(t *testing.T) {
	kp, err := crypto.GenerateKeyPair()
	require.NoError(t, err)
	c, _ := newTestClient(t, kp, adapter.Options{}, func(adapter.Operation) (int, any) {
		return http.StatusOK, map[string]any{
			"data":   map[string]any{adapter.ContactName: nil},
			"errors": []map[string]any{{"message": "contact not found"}},
		}
	})

	resp, err := c.Execute(context.Background(), adapter.Operation{Name: adapter.ContactName, Query: "query contact { contact { _id } }"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGraphQL)
	assert.Contains(t, err.Error(), "contact not found")
	require.Len(t, resp.Errors, 1)
}

func TestExecute_MalformedBody(t *testing.T) {
	kp, err := crypto.GenerateKeyPair()
	require.NoError(t, err)
	c, _ := newTestClient(t, kp, adapter.Options{}, func(adapter.Operation) (int, any) {
		return http.StatusOK, "{not json"
	})

	_, err = c.Execute(context.Background(), createOp(map[string]any{"name": "Alice"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode createContact response")
}

func TestNewClient_InvalidAddress(t *testing.T) {
	_, err := NewClient(config.ClientAdapter{HTTPAddress: "  "}, config.ClientApp{}, nil, nil)
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: "https://api.example.com/", want: "https://api.example.com"},
		{in: " http://127.0.0.1:9000 ", want: "http://127.0.0.1:9000"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
