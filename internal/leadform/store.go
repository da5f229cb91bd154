package leadform

import (
	"context"
	"sync"
	"time"

	"hersalon/internal/utils"
	"hersalon/pkg/types"
)

// Store keeps one controller per open application form, keyed by an opaque
// session id handed to the visitor. Entries idle longer than the ttl are
// dropped the next time a form is opened, unless they are still sending.
type Store struct {
	mu      sync.Mutex
	entries map[string]*storeEntry

	submitter Submitter
	ttl       time.Duration
	now       func() time.Time

	ctx    context.Context
	cancel context.CancelFunc
}

type storeEntry struct {
	ctrl     *Controller
	lastSeen time.Time
}

func NewStore(submitter Submitter, ttl time.Duration) *Store {
	ctx, cancel := context.WithCancel(context.Background())
	return &Store{
		entries:   make(map[string]*storeEntry),
		submitter: submitter,
		ttl:       ttl,
		now:       time.Now,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Open starts a fresh, empty form and returns its session id.
func (s *Store) Open() (string, *Controller) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweepLocked(now)

	id := utils.NanoID()
	ctrl := NewController(s.ctx, s.submitter)
	s.entries[id] = &storeEntry{ctrl: ctrl, lastSeen: now}

	return id, ctrl
}

func (s *Store) Get(id string) (*Controller, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return nil, false
	}

	now := s.now()
	if s.expired(e, now) {
		delete(s.entries, id)
		e.ctrl.Close()
		return nil, false
	}

	e.lastSeen = now
	return e.ctrl, true
}

// Discard closes and forgets a form. Unknown ids are ignored.
func (s *Store) Discard(id string) {
	s.mu.Lock()
	e, ok := s.entries[id]
	delete(s.entries, id)
	s.mu.Unlock()

	if ok {
		e.ctrl.Close()
	}
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Close disposes every open form and cancels in-flight submissions.
func (s *Store) Close() {
	s.mu.Lock()
	entries := s.entries
	s.entries = make(map[string]*storeEntry)
	s.mu.Unlock()

	for _, e := range entries {
		e.ctrl.Close()
	}
	s.cancel()
}

func (s *Store) sweepLocked(now time.Time) {
	for id, e := range s.entries {
		if s.expired(e, now) {
			delete(s.entries, id)
			e.ctrl.Close()
		}
	}
}

func (s *Store) expired(e *storeEntry, now time.Time) bool {
	if s.ttl <= 0 {
		return false
	}
	if now.Sub(e.lastSeen) < s.ttl {
		return false
	}
	return e.ctrl.Status() != types.SubmissionSending
}
