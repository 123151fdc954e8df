package stockbot

import (
	"slices"
	"sync"

	"github.com/google/uuid"
)

// DefaultSlots is the number of URL slots a session starts with.
const DefaultSlots = 3

// Session holds the transient state of one research session: the URL slots,
// the current question and answer, the progress log, and the busy flag.
// It is safe for concurrent use. Slices returned by accessors are copies.
type Session struct {
	mu       sync.Mutex
	id       string
	urls     []string
	question string
	answer   *Answer
	progress []string
	busy     bool
}

// SessionSnapshot is a point-in-time copy of a Session for rendering.
type SessionSnapshot struct {
	ID       string
	URLs     []string
	Question string
	Answer   *Answer
	Progress []string
	Busy     bool
}

// NewSession returns a session with the given number of empty URL slots.
// Values below 1 fall back to DefaultSlots.
func NewSession(slots int) *Session {
	if slots < 1 {
		slots = DefaultSlots
	}
	return &Session{
		id:       uuid.NewString(),
		urls:     make([]string, slots),
		progress: []string{},
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// URLs returns the URL slots in order.
func (s *Session) URLs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.urls)
}

// SetURL replaces the slot at index. The value is not validated.
// Returns EINVALID if index is out of range.
func (s *Session) SetURL(index int, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.urls) {
		return Errorf(EINVALID, "url slot %d out of range (1-%d)", index+1, len(s.urls))
	}
	s.urls[index] = value
	return nil
}

// Question returns the current question text.
func (s *Session) Question() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.question
}

// SetQuestion stores the question text.
func (s *Session) SetQuestion(question string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.question = question
}

// Answer returns the last successful answer, or nil if none.
func (s *Session) Answer() *Answer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAnswer(s.answer)
}

// SetAnswer replaces the stored answer.
func (s *Session) SetAnswer(answer *Answer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.answer = cloneAnswer(answer)
}

// Progress returns the milestones of the current run in order.
func (s *Session) Progress() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.progress)
}

// AppendProgress appends a milestone to the progress log.
func (s *Session) AppendProgress(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress = append(s.progress, message)
}

// ResetProgress clears the progress log.
func (s *Session) ResetProgress() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress = []string{}
}

// Busy reports whether an operation is in flight.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// SetBusy sets the busy flag.
func (s *Session) SetBusy(busy bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = busy
}

// TryBusy sets the busy flag and returns true if the session was idle.
// It returns false and changes nothing if an operation is already in flight.
func (s *Session) TryBusy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return false
	}
	s.busy = true
	return true
}

// BeginRun marks the session busy, clears the progress log and appends
// first, all under one lock. It returns false and changes nothing if an
// operation is already in flight.
func (s *Session) BeginRun(first string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return false
	}
	s.busy = true
	s.progress = []string{first}
	return true
}

// Snapshot returns a copy of the whole session state.
func (s *Session) Snapshot() SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SessionSnapshot{
		ID:       s.id,
		URLs:     slices.Clone(s.urls),
		Question: s.question,
		Answer:   cloneAnswer(s.answer),
		Progress: slices.Clone(s.progress),
		Busy:     s.busy,
	}
}

// cloneAnswer copies a, normalizing nil sources to an empty slice.
func cloneAnswer(a *Answer) *Answer {
	if a == nil {
		return nil
	}
	sources := slices.Clone(a.Sources)
	if sources == nil {
		sources = []string{}
	}
	return &Answer{Text: a.Text, Sources: sources}
}
