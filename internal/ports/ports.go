package ports

import (
	"context"
	"time"

	"AOSocial/internal/domain"
)

// ProfileStore keeps the current profile blob per wallet owner.
type ProfileStore interface {
	Get(ctx context.Context, owner string) (domain.Profile, bool, error)
	Set(ctx context.Context, owner string, profile domain.Profile) error
}

// ProcessResolver finds the default process spawned by a wallet owner.
// An empty id with a nil error means the owner has none.
type ProcessResolver interface {
	DefaultProcess(ctx context.Context, owner string) (string, error)
}

// Messenger delivers a signed action message to a process and returns its id.
type Messenger interface {
	Send(ctx context.Context, process, action string, data any) (string, error)
}

// DryRunner evaluates a read-only message against a process.
type DryRunner interface {
	DryRun(ctx context.Context, process string, tags []domain.Tag) ([]domain.Message, error)
}

// BalanceQuerier asks a token process for the balance of an account.
type BalanceQuerier interface {
	Balance(ctx context.Context, token domain.Token, account string) (domain.Balance, error)
}

// Scheduler controls when recurring jobs execute.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
