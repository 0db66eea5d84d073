package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"AOSocial/internal/domain"
	"AOSocial/internal/ports"
	"AOSocial/internal/validate"
)

// ActionSetProfile is the process handler that stores a user's profile.
const ActionSetProfile = "AOTwitter.setProfile"

var (
	// ErrNoProcess means the wallet owns no default process yet.
	ErrNoProcess = errors.New("no default process for this wallet; disconnect and reconnect the wallet to get one")
	// ErrSaveFailed means the network did not accept the profile message.
	ErrSaveFailed = errors.New("setting the profile failed")
)

// SaveOutcome tells callers whether anything was sent.
type SaveOutcome int

const (
	OutcomeUnchanged SaveOutcome = iota
	OutcomeSaved
)

func (o SaveOutcome) String() string {
	if o == OutcomeSaved {
		return "saved"
	}
	return "unchanged"
}

// ProfileEditorDeps wires the collaborators of the profile edit flow.
type ProfileEditorDeps struct {
	Store     ports.ProfileStore
	Resolver  ports.ProcessResolver
	Messenger ports.Messenger
	Now       func() time.Time
	Logger    *slog.Logger
}

// ProfileEditor validates, publishes and caches profile edits.
type ProfileEditor struct {
	store     ports.ProfileStore
	resolver  ports.ProcessResolver
	messenger ports.Messenger
	now       func() time.Time
	logger    *slog.Logger
}

// NewProfileEditor constructs the edit flow.
func NewProfileEditor(deps ProfileEditorDeps) *ProfileEditor {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &ProfileEditor{
		store:     deps.Store,
		resolver:  deps.Resolver,
		messenger: deps.Messenger,
		now:       now,
		logger:    deps.Logger,
	}
}

// profileMessage is the payload understood by the setProfile handler; time is
// sent as a decimal string of seconds.
type profileMessage struct {
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
	Banner   string `json:"banner"`
	Bio      string `json:"bio"`
	Time     string `json:"time"`
}

// Current returns the cached profile of owner.
func (e *ProfileEditor) Current(ctx context.Context, owner string) (domain.Profile, bool, error) {
	return e.store.Get(ctx, owner)
}

// Save publishes draft for owner unless it matches the cached profile.
// A nickname rejection is returned as *domain.RejectedError.
func (e *ProfileEditor) Save(ctx context.Context, owner string, draft domain.Profile) (SaveOutcome, error) {
	current, found, err := e.store.Get(ctx, owner)
	if err != nil {
		return OutcomeUnchanged, fmt.Errorf("load profile: %w", err)
	}
	if found && current.SameContent(draft) {
		e.debug("profile unchanged", "owner", owner)
		return OutcomeUnchanged, nil
	}

	if err := validate.Nickname(draft.Nickname).Err(); err != nil {
		return OutcomeUnchanged, err
	}

	process, err := e.resolver.DefaultProcess(ctx, owner)
	if err != nil {
		return OutcomeUnchanged, fmt.Errorf("resolve process: %w", err)
	}
	if process == "" {
		return OutcomeUnchanged, ErrNoProcess
	}

	draft.Time = domain.Timestamp(e.now().Unix())
	msg := profileMessage{
		Nickname: draft.Nickname,
		Avatar:   draft.Avatar,
		Banner:   draft.Banner,
		Bio:      draft.Bio,
		Time:     strconv.FormatInt(int64(draft.Time), 10),
	}

	id, err := e.messenger.Send(ctx, process, ActionSetProfile, msg)
	if err != nil {
		return OutcomeUnchanged, fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	if id == "" {
		return OutcomeUnchanged, ErrSaveFailed
	}

	if err := e.store.Set(ctx, owner, draft); err != nil {
		return OutcomeSaved, fmt.Errorf("cache profile: %w", err)
	}

	e.info("profile saved", "owner", owner, "process", process, "message", id)
	return OutcomeSaved, nil
}

func (e *ProfileEditor) debug(msg string, args ...any) {
	if e.logger != nil {
		e.logger.Debug(msg, args...)
	}
}

func (e *ProfileEditor) info(msg string, args ...any) {
	if e.logger != nil {
		e.logger.Info(msg, args...)
	}
}
