package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"AOSocial/internal/ports"
)

const processQuery = `query ($owner: String!) {
  transactions(
    first: 1
    owners: [$owner]
    tags: [
      { name: "Data-Protocol", values: ["ao"] },
      { name: "Type", values: ["Process"] },
      { name: "Name", values: ["default"] }
    ]
  ) {
    edges {
      node {
        id
      }
    }
  }
}`

// Resolver looks up the default AO process of a wallet through an Arweave GraphQL gateway.
type Resolver struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

var _ ports.ProcessResolver = (*Resolver)(nil)

// NewResolver wires an HTTP client; a nil client gets a 15s timeout.
func NewResolver(endpoint string, client *http.Client, log *slog.Logger) *Resolver {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Resolver{endpoint: endpoint, client: client, logger: log}
}

type request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type response struct {
	Data struct {
		Transactions struct {
			Edges []struct {
				Node struct {
					ID string `json:"id"`
				} `json:"node"`
			} `json:"edges"`
		} `json:"transactions"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// DefaultProcess returns the newest process named "default" owned by owner, or
// "" when the owner never spawned one.
func (r *Resolver) DefaultProcess(ctx context.Context, owner string) (string, error) {
	if owner == "" {
		return "", fmt.Errorf("default process: empty owner")
	}

	body, err := json.Marshal(request{
		Query:     processQuery,
		Variables: map[string]any{"owner": owner},
	})
	if err != nil {
		return "", fmt.Errorf("marshal graphql query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("query gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("gateway error %s: %s", resp.Status, strings.TrimSpace(string(msg)))
	}

	var out response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode gateway response: %w", err)
	}
	if len(out.Errors) > 0 {
		return "", fmt.Errorf("gateway error: %s", out.Errors[0].Message)
	}

	edges := out.Data.Transactions.Edges
	if len(edges) == 0 {
		r.debug("no default process", "owner", owner)
		return "", nil
	}

	r.debug("default process resolved", "owner", owner, "process", edges[0].Node.ID)
	return edges[0].Node.ID, nil
}

func (r *Resolver) debug(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Debug(msg, args...)
	}
}
