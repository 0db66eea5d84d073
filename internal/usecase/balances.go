package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"AOSocial/internal/domain"
	"AOSocial/internal/format"
	"AOSocial/internal/ports"
)

const balanceDecimals = 3

// BoardEntry is one token row of the balance board.
type BoardEntry struct {
	Token   domain.Token
	Amount  float64
	Display string
	Err     error
}

// Board lists the balances held by an owner's default process.
type Board struct {
	Owner       string
	Process     string
	Entries     []BoardEntry
	RefreshedAt time.Time
}

// BalanceBoardDeps wires collaborators for balance refreshes.
type BalanceBoardDeps struct {
	Resolver ports.ProcessResolver
	Querier  ports.BalanceQuerier
	Tokens   []domain.Token
	Now      func() time.Time
	Logger   *slog.Logger
}

// BalanceBoard queries every configured token for the owner's process.
type BalanceBoard struct {
	resolver ports.ProcessResolver
	querier  ports.BalanceQuerier
	tokens   []domain.Token
	now      func() time.Time
	logger   *slog.Logger
}

// NewBalanceBoard constructs the board.
func NewBalanceBoard(deps BalanceBoardDeps) *BalanceBoard {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &BalanceBoard{
		resolver: deps.Resolver,
		querier:  deps.Querier,
		tokens:   deps.Tokens,
		now:      now,
		logger:   deps.Logger,
	}
}

// Refresh resolves the default process of owner and reads each token balance.
// A failing token is reported as zero with Err set; the others still load.
func (b *BalanceBoard) Refresh(ctx context.Context, owner string) (Board, error) {
	process, err := b.resolver.DefaultProcess(ctx, owner)
	if err != nil {
		return Board{}, fmt.Errorf("resolve process: %w", err)
	}
	if process == "" {
		return Board{}, ErrNoProcess
	}

	board := Board{
		Owner:       owner,
		Process:     process,
		Entries:     make([]BoardEntry, 0, len(b.tokens)),
		RefreshedAt: b.now(),
	}

	for _, token := range b.tokens {
		entry := BoardEntry{Token: token, Display: "0"}

		bal, err := b.querier.Balance(ctx, token, process)
		if err == nil {
			entry.Amount, err = format.FormatBalance(bal.Raw, token.Denomination)
		}
		if err != nil {
			entry.Amount = 0
			entry.Err = err
			b.warn("balance unavailable", "token", token.Name, "process", process, "error", err)
		} else {
			entry.Display = format.BalanceString(entry.Amount, balanceDecimals)
		}

		board.Entries = append(board.Entries, entry)
	}

	return board, nil
}

func (b *BalanceBoard) warn(msg string, args ...any) {
	if b.logger != nil {
		b.logger.Warn(msg, args...)
	}
}
