package book

import (
	"context"
)

// Service provides book-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every book in insertion order.
func (s *Service) List(ctx context.Context) ([]Book, error) {
	return s.repo.List(ctx)
}

// Search returns the books matching q. An empty q lists everything.
func (s *Service) Search(ctx context.Context, q string) ([]Book, error) {
	if q == "" {
		return s.repo.List(ctx)
	}
	return s.repo.Search(ctx, q)
}

func (s *Service) GetByID(ctx context.Context, id int) (Book, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates the payload before handing it to the repository.
func (s *Service) Create(ctx context.Context, in Input) (Book, error) {
	if err := in.Validate(); err != nil {
		return Book{}, err
	}
	return s.repo.Create(ctx, in)
}

// Update replaces the book wholesale. Missing fields are stored as zero
// values; unlike Create, nothing is required.
func (s *Service) Update(ctx context.Context, id int, in Input) (Book, error) {
	return s.repo.Update(ctx, id, in)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
