package graphql

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDefaultProcess(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if !strings.Contains(req.Query, `"Data-Protocol"`) || !strings.Contains(req.Query, `"default"`) {
			t.Errorf("unexpected query: %s", req.Query)
		}

		switch req.Variables["owner"] {
		case "with-process":
			_, _ = w.Write([]byte(`{"data":{"transactions":{"edges":[{"node":{"id":"proc-abc"}}]}}}`))
		case "broken":
			_, _ = w.Write([]byte(`{"errors":[{"message":"rate limited"}]}`))
		default:
			_, _ = w.Write([]byte(`{"data":{"transactions":{"edges":[]}}}`))
		}
	}))
	defer server.Close()

	r := NewResolver(server.URL, server.Client(), nil)
	ctx := context.Background()

	id, err := r.DefaultProcess(ctx, "with-process")
	if err != nil {
		t.Fatalf("DefaultProcess error: %v", err)
	}
	if id != "proc-abc" {
		t.Fatalf("unexpected process: %s", id)
	}

	id, err = r.DefaultProcess(ctx, "fresh-wallet")
	if err != nil || id != "" {
		t.Fatalf("expected empty process, got %q (%v)", id, err)
	}

	if _, err := r.DefaultProcess(ctx, "broken"); err == nil || !strings.Contains(err.Error(), "rate limited") {
		t.Fatalf("expected gateway error, got %v", err)
	}

	if _, err := r.DefaultProcess(ctx, ""); err == nil {
		t.Fatalf("expected error for empty owner")
	}
}

func TestDefaultProcessHTTPError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer server.Close()

	r := NewResolver(server.URL, server.Client(), nil)
	if _, err := r.DefaultProcess(context.Background(), "x"); err == nil {
		t.Fatalf("expected error on 502")
	}
}
