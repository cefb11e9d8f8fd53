package problems

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"cloud.google.com/go/civil"
	"go.uber.org/zap"

	"github.com/abhisek/revise/internal/clock"
	"github.com/abhisek/revise/internal/store"
)

// CollectionKey is the KV key the problem collection is stored under.
const CollectionKey = "problems"

// Service owns the tracked problems and their revision history.
// Every mutation is a full read-modify-write of the persisted collection.
type Service struct {
	mu     sync.Mutex
	kv     store.KV
	clock  clock.Clock
	now    func() time.Time
	logger *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for recoverable storage warnings.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithNow overrides the wall clock used to derive problem ids.
func WithNow(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a Service persisting to kv and dating revisions with clk.
func NewService(kv store.KV, clk clock.Clock, opts ...Option) *Service {
	s := &Service{
		kv:     kv,
		clock:  clk,
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Today returns the service clock's current date.
func (s *Service) Today() civil.Date {
	return s.clock.Today()
}

// AddProblem creates a problem first attempted today.
func (s *Service) AddProblem(ctx context.Context, name string) (Problem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Problem{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return Problem{}, err
	}

	id, err := s.nextID(list)
	if err != nil {
		return Problem{}, err
	}

	today := s.clock.Today()
	p := Problem{
		ID:           id,
		Name:         name,
		FirstAttempt: today,
		Revisions:    []civil.Date{today},
	}
	list = append(list, p)

	if err := s.save(ctx, list); err != nil {
		return Problem{}, err
	}
	s.logger.Debug("problem added", zap.Int64("id", p.ID), zap.String("name", p.Name))
	return p.clone(), nil
}

// MarkRevisionToday records a revision of problem id dated today.
func (s *Service) MarkRevisionToday(ctx context.Context, id int64) (Problem, error) {
	return s.MarkRevision(ctx, id, s.clock.Today())
}

// MarkRevision records a revision of problem id on date. Marking a day that
// is already recorded is a no-op and writes nothing.
func (s *Service) MarkRevision(ctx context.Context, id int64, date civil.Date) (Problem, error) {
	if !date.IsValid() {
		return Problem{}, &ValidationError{Field: "date", Reason: fmt.Sprintf("%s is not a calendar date", date)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return Problem{}, err
	}

	i := indexOf(list, id)
	if i < 0 {
		return Problem{}, &NotFoundError{ID: id}
	}

	if list[i].addRevision(date) {
		if err := s.save(ctx, list); err != nil {
			return Problem{}, err
		}
		s.logger.Debug("revision marked", zap.Int64("id", id), zap.Stringer("date", date))
	}
	return list[i].clone(), nil
}

// SaveSolution replaces the saved solution of problem id.
func (s *Service) SaveSolution(ctx context.Context, id int64, text string) (Problem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return Problem{}, err
	}

	i := indexOf(list, id)
	if i < 0 {
		return Problem{}, &NotFoundError{ID: id}
	}

	list[i].Solution = text
	if err := s.save(ctx, list); err != nil {
		return Problem{}, err
	}
	s.logger.Debug("solution saved", zap.Int64("id", id), zap.Int("bytes", len(text)))
	return list[i].clone(), nil
}

// GetProblem returns a copy of problem id.
func (s *Service) GetProblem(ctx context.Context, id int64) (Problem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return Problem{}, err
	}

	i := indexOf(list, id)
	if i < 0 {
		return Problem{}, &NotFoundError{ID: id}
	}
	return list[i].clone(), nil
}

// ListProblems returns a copy of all problems in insertion order.
func (s *Service) ListProblems(ctx context.Context) ([]Problem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return cloneAll(list), nil
}

// load reads the collection. An absent or malformed collection loads as empty.
func (s *Service) load(ctx context.Context) ([]Problem, error) {
	raw, ok, err := s.kv.Get(ctx, CollectionKey)
	if err != nil {
		return nil, fmt.Errorf("load problems: %w", err)
	}
	if !ok {
		return nil, nil
	}

	list, err := decodeCollection(raw)
	if err != nil {
		var malformed *errMalformed
		if errors.As(err, &malformed) {
			s.logger.Warn("discarding malformed problem collection",
				zap.Error(err),
				zap.Int("bytes", len(raw)),
			)
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (s *Service) save(ctx context.Context, list []Problem) error {
	raw, err := encodeCollection(list)
	if err != nil {
		return fmt.Errorf("encode problems: %w", err)
	}
	if err := s.kv.Set(ctx, CollectionKey, raw); err != nil {
		return fmt.Errorf("save problems: %w", err)
	}
	return nil
}

// nextID derives an id from the current time in milliseconds, bumped past
// the largest existing id when two problems land in the same millisecond.
func (s *Service) nextID(list []Problem) (int64, error) {
	id := s.now().UnixMilli()
	for _, p := range list {
		if p.ID < id {
			continue
		}
		if p.ID == math.MaxInt64 {
			return 0, ErrIDSpaceExhausted
		}
		id = p.ID + 1
	}
	return id, nil
}

func indexOf(list []Problem, id int64) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}
