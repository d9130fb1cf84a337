package book

import (
	"context"
	"slices"
	"sync"
)

// MemoryRepository keeps books in process memory, in insertion order.
type MemoryRepository struct {
	mu    sync.RWMutex
	books map[string]Book
	order []string
}

// NewMemoryRepository constructs a MemoryRepository seeded with the provided books.
func NewMemoryRepository(seed []Book) *MemoryRepository {
	repo := &MemoryRepository{
		books: make(map[string]Book, len(seed)),
		order: make([]string, 0, len(seed)),
	}

	for _, b := range seed {
		if _, ok := repo.books[b.ID]; ok {
			continue
		}
		repo.books[b.ID] = b
		repo.order = append(repo.order, b.ID)
	}

	return repo
}

// Insert appends b to the end of the collection.
func (r *MemoryRepository) Insert(_ context.Context, b Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[b.ID]; ok {
		return ErrDuplicateID
	}

	r.books[b.ID] = b
	r.order = append(r.order, b.ID)
	return nil
}

// List returns a copy of all books in insertion order.
func (r *MemoryRepository) List(_ context.Context) ([]Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Book, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.books[id])
	}
	return result, nil
}

// Get retrieves a book by its ID.
func (r *MemoryRepository) Get(_ context.Context, id string) (Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.books[id]
	if !ok {
		return Book{}, ErrNotFound
	}
	return b, nil
}

// Update runs mutate on the stored book under the write lock.
// The ID is restored afterwards so mutate cannot re-key the record.
func (r *MemoryRepository) Update(_ context.Context, id string, mutate func(*Book)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.books[id]
	if !ok {
		return ErrNotFound
	}

	mutate(&b)
	b.ID = id
	r.books[id] = b
	return nil
}

// Delete removes the book with the provided ID, keeping the order of the rest.
func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[id]; !ok {
		return ErrNotFound
	}

	delete(r.books, id)
	if i := slices.Index(r.order, id); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
	return nil
}

// Len reports the number of stored books.
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
