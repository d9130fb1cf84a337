package book

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=book

// ErrDuplicateID is returned by Repository.Insert when the id is already taken.
var ErrDuplicateID = errors.New("book id already exists")

// Repository defines the contract for book data storage.
// List must return books in insertion order.
type Repository interface {
	Insert(ctx context.Context, b Book) error
	List(ctx context.Context) ([]Book, error)
	Get(ctx context.Context, id string) (Book, error)
	Update(ctx context.Context, id string, mutate func(*Book)) error
	Delete(ctx context.Context, id string) error
}

// IDGenerator supplies unique opaque book ids.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random v4 UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// Clock returns the current time.
type Clock func() time.Time
