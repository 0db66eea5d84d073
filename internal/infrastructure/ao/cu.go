package ao

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"AOSocial/internal/domain"
	"AOSocial/internal/ports"
)

// RecordSeparator splits multi-record Data payloads returned by the social process.
const RecordSeparator = "▲"

// placeholder values the compute unit expects for unsigned dry runs
const (
	dryRunID     = "1234"
	dryRunOwner  = "1234"
	dryRunAnchor = "0"
	dryRunData   = "1234"
)

// ErrEmptyReply is returned by Balance when the token process answered with no message.
var ErrEmptyReply = errors.New("process returned no messages")

// CUClient evaluates read-only messages through a compute unit.
type CUClient struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

var _ ports.DryRunner = (*CUClient)(nil)
var _ ports.BalanceQuerier = (*CUClient)(nil)

// NewCUClient targets the compute unit at baseURL.
func NewCUClient(baseURL string, client *http.Client, log *slog.Logger) *CUClient {
	return &CUClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    newHTTPClient(client),
		logger:  log,
	}
}

type dryRunRequest struct {
	ID     string       `json:"Id"`
	Target string       `json:"Target"`
	Owner  string       `json:"Owner"`
	Anchor string       `json:"Anchor"`
	Data   string       `json:"Data"`
	Tags   []domain.Tag `json:"Tags"`
}

type dryRunResponse struct {
	Messages []domain.Message `json:"Messages"`
	Error    string           `json:"Error"`
}

// DryRun posts tags to process without signing and returns the reply messages.
func (c *CUClient) DryRun(ctx context.Context, process string, tags []domain.Tag) ([]domain.Message, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("compute unit url is not configured")
	}
	if process == "" {
		return nil, fmt.Errorf("dry run: empty process id")
	}

	endpoint := c.baseURL + "/dry-run?process-id=" + url.QueryEscape(process)
	payload := dryRunRequest{
		ID:     dryRunID,
		Target: process,
		Owner:  dryRunOwner,
		Anchor: dryRunAnchor,
		Data:   dryRunData,
		Tags:   tags,
	}

	var resp dryRunResponse
	if err := postJSON(ctx, c.http, endpoint, payload, &resp); err != nil {
		return nil, fmt.Errorf("dry run %s: %w", process, err)
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("dry run %s: process error: %s", process, resp.Error)
	}

	c.debug("dry run", "process", process, "messages", len(resp.Messages))
	return resp.Messages, nil
}

// Query asks the social process for paged data. It returns nil when the process
// has nothing to report, and otherwise the records of the first reply.
func (c *CUClient) Query(ctx context.Context, process, action string, pageNo int, pageSize, postID string) ([]string, error) {
	page := ""
	if pageNo > 0 {
		page = strconv.Itoa(pageNo)
	}

	messages, err := c.DryRun(ctx, process, []domain.Tag{
		{Name: "Action", Value: action},
		{Name: "pageNo", Value: page},
		{Name: "pageSize", Value: pageSize},
		{Name: "postId", Value: postID},
	})
	if err != nil {
		return nil, err
	}
	if len(messages) == 0 || messages[0].Data == "" {
		return nil, nil
	}
	return strings.Split(messages[0].Data, RecordSeparator), nil
}

// Balance reads the raw balance of account from the token process.
func (c *CUClient) Balance(ctx context.Context, token domain.Token, account string) (domain.Balance, error) {
	messages, err := c.DryRun(ctx, token.Process, []domain.Tag{
		{Name: "Action", Value: "Balance"},
		{Name: "Target", Value: account},
	})
	if err != nil {
		return domain.Balance{}, fmt.Errorf("balance of %s: %w", token.Name, err)
	}
	if len(messages) == 0 {
		return domain.Balance{}, fmt.Errorf("balance of %s: %w", token.Name, ErrEmptyReply)
	}

	raw, ok := messages[0].TagValue("Balance")
	if !ok {
		raw = messages[0].Data
	}

	return domain.Balance{Token: token, Account: account, Raw: strings.TrimSpace(raw)}, nil
}

func (c *CUClient) debug(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}
