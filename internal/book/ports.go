package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=book

// Repository defines the contract for book data storage.
type Repository interface {
	List(ctx context.Context) ([]Book, error)
	Search(ctx context.Context, q string) ([]Book, error)
	GetByID(ctx context.Context, id int) (Book, error)
	Create(ctx context.Context, in Input) (Book, error)
	Update(ctx context.Context, id int, in Input) (Book, error)
	Delete(ctx context.Context, id int) error
}
