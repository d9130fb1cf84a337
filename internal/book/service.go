package book

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Service provides book-related business logic.
type Service struct {
	repo  Repository
	ids   IDGenerator
	clock Clock
}

// Option configures a Service.
type Option func(*Service)

// WithIDGenerator replaces the default UUID generator.
func WithIDGenerator(g IDGenerator) Option {
	return func(s *Service) { s.ids = g }
}

// WithClock replaces time.Now.
func WithClock(c Clock) Option {
	return func(s *Service) { s.clock = c }
}

// NewService creates a new book service.
func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:  repo,
		ids:   UUIDGenerator{},
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates in, stores a new book and returns its id.
func (s *Service) Create(ctx context.Context, in Input) (string, error) {
	if err := Validate(in); err != nil {
		return "", err
	}

	now := s.clock()
	b := Book{
		ID:         s.ids.NewID(),
		InsertedAt: now,
		UpdatedAt:  now,
	}
	b.apply(in)

	if err := s.repo.Insert(ctx, b); err != nil {
		return "", fmt.Errorf("insert book: %w", err)
	}
	return b.ID, nil
}

// ListFiltered returns the projections of the books matching q.
func (s *Service) ListFiltered(ctx context.Context, q Query) ([]Summary, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	match := q.matcher()
	result := make([]Summary, 0, len(books))
	for _, b := range books {
		if match(b) {
			result = append(result, b.summary())
		}
	}
	return result, nil
}

// GetByID returns the book with the given id.
func (s *Service) GetByID(ctx context.Context, id string) (Book, error) {
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Book{}, ErrNotFound
		}
		return Book{}, fmt.Errorf("get book %s: %w", id, err)
	}
	return b, nil
}

// Update replaces every mutable field of the book. Input is validated
// before the book is looked up.
func (s *Service) Update(ctx context.Context, id string, in Input) error {
	if err := Validate(in); err != nil {
		return err
	}

	now := s.clock()
	err := s.repo.Update(ctx, id, func(b *Book) {
		b.apply(in)
		b.UpdatedAt = now
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("update book %s: %w", id, err)
	}
	return nil
}

// Delete removes the book with the given id.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete book %s: %w", id, err)
	}
	return nil
}

func (q Query) matcher() func(Book) bool {
	switch {
	case q.Name != "":
		needle := strings.ToLower(q.Name)
		return func(b Book) bool {
			return strings.Contains(strings.ToLower(b.Name), needle)
		}
	case q.Reading.IsSet():
		return func(b Book) bool { return q.Reading.Matches(b.Reading) }
	case q.Finished.IsSet():
		return func(b Book) bool { return q.Finished.Matches(b.Finished) }
	default:
		return func(Book) bool { return true }
	}
}
