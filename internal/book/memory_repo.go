package book

import (
	"context"
	"slices"
	"sync"
)

// MemoryRepo keeps books in-process. Books are indexed by id and listed in
// insertion order. Ids are never reused, even after a delete.
type MemoryRepo struct {
	mu     sync.RWMutex
	books  map[int]Book
	order  []int
	nextID int
}

// NewMemoryRepo constructs a MemoryRepo holding the given books in order.
// The id counter starts above the highest seeded id.
func NewMemoryRepo(seed []Book) *MemoryRepo {
	r := &MemoryRepo{
		books:  make(map[int]Book, len(seed)),
		order:  make([]int, 0, len(seed)),
		nextID: 1,
	}
	for _, b := range seed {
		if _, exists := r.books[b.ID]; !exists {
			r.order = append(r.order, b.ID)
		}
		r.books[b.ID] = b
		if b.ID >= r.nextID {
			r.nextID = b.ID + 1
		}
	}
	return r
}

func (r *MemoryRepo) List(_ context.Context) ([]Book, error) {
	return r.filter(""), nil
}

func (r *MemoryRepo) Search(_ context.Context, q string) ([]Book, error) {
	return r.filter(q), nil
}

func (r *MemoryRepo) filter(q string) []Book {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Book, 0, len(r.order))
	for _, id := range r.order {
		if b := r.books[id]; b.Matches(q) {
			out = append(out, b)
		}
	}
	return out
}

func (r *MemoryRepo) GetByID(_ context.Context, id int) (Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.books[id]
	if !ok {
		return Book{}, ErrNotFound
	}
	return b, nil
}

// Create assigns the next id and appends the book. Input is not validated here.
func (r *MemoryRepo) Create(_ context.Context, in Input) (Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := in.toBook(r.nextID)
	r.nextID++
	r.books[b.ID] = b
	r.order = append(r.order, b.ID)
	return b, nil
}

// Update replaces every field except the id. The book keeps its position.
func (r *MemoryRepo) Update(_ context.Context, id int, in Input) (Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[id]; !ok {
		return Book{}, ErrNotFound
	}
	b := in.toBook(id)
	r.books[id] = b
	return b, nil
}

func (r *MemoryRepo) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[id]; !ok {
		return ErrNotFound
	}
	delete(r.books, id)
	r.order = slices.DeleteFunc(r.order, func(v int) bool { return v == id })
	return nil
}
