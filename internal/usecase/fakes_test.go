package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"AOSocial/internal/domain"
)

type memoryStore struct {
	mu       sync.Mutex
	profiles map[string]domain.Profile
	sets     int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{profiles: map[string]domain.Profile{}}
}

func (m *memoryStore) Get(_ context.Context, owner string) (domain.Profile, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[owner]
	return p, ok, nil
}

func (m *memoryStore) Set(_ context.Context, owner string, p domain.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[owner] = p
	m.sets++
	return nil
}

type staticResolver struct {
	process string
	err     error
}

func (r staticResolver) DefaultProcess(context.Context, string) (string, error) {
	return r.process, r.err
}

type recordingMessenger struct {
	id    string
	err   error
	calls []sentMessage
}

type sentMessage struct {
	process string
	action  string
	data    any
}

func (m *recordingMessenger) Send(_ context.Context, process, action string, data any) (string, error) {
	m.calls = append(m.calls, sentMessage{process: process, action: action, data: data})
	return m.id, m.err
}

type mapQuerier map[string]string

var errUnknownToken = errors.New("unknown token")

func (q mapQuerier) Balance(_ context.Context, token domain.Token, account string) (domain.Balance, error) {
	raw, ok := q[token.Process]
	if !ok {
		return domain.Balance{}, errUnknownToken
	}
	return domain.Balance{Token: token, Account: account, Raw: raw}, nil
}

type manualScheduler struct {
	job     func(time.Time)
	stopped bool
}

func (s *manualScheduler) Start(_ context.Context, job func(time.Time)) error {
	s.job = job
	return nil
}

func (s *manualScheduler) Stop(context.Context) error {
	s.stopped = true
	return nil
}
