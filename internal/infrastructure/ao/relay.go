package ao

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"AOSocial/internal/domain"
	"AOSocial/internal/ports"
)

// RelayClient hands action messages to a signing relay, which signs them with
// the user's wallet and forwards them to the messenger unit.
type RelayClient struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

var _ ports.Messenger = (*RelayClient)(nil)

// NewRelayClient targets the relay at baseURL.
func NewRelayClient(baseURL string, client *http.Client, log *slog.Logger) *RelayClient {
	return &RelayClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    newHTTPClient(client),
		logger:  log,
	}
}

type relayMessage struct {
	Ref     string       `json:"ref"`
	Process string       `json:"process"`
	Tags    []domain.Tag `json:"tags"`
	Data    string       `json:"data"`
}

type relayReply struct {
	ID string `json:"id"`
}

// Send marshals data to JSON and delivers it to process under the given action.
func (r *RelayClient) Send(ctx context.Context, process, action string, data any) (string, error) {
	if r.baseURL == "" {
		return "", fmt.Errorf("signing relay url is not configured")
	}

	body, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("marshal %s data: %w", action, err)
	}

	msg := relayMessage{
		Ref:     uuid.NewString(),
		Process: process,
		Tags:    []domain.Tag{{Name: "Action", Value: action}},
		Data:    string(body),
	}

	var reply relayReply
	if err := postJSON(ctx, r.http, r.baseURL+"/message", msg, &reply); err != nil {
		return "", fmt.Errorf("send %s: %w", action, err)
	}

	if r.logger != nil {
		r.logger.Debug("message sent", "process", process, "action", action, "ref", msg.Ref, "id", reply.ID)
	}
	return reply.ID, nil
}
