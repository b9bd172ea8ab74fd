package business

import "context"

// BusinessRepository is the storage port for tenant records. The parking core
// only reads businesses; registration and edits are an administrative concern.
type BusinessRepository interface {
	Create(ctx context.Context, b *Business) error
	Update(ctx context.Context, b *Business) error

	FindByID(ctx context.Context, id uint) (*Business, error)
	FindBySID(ctx context.Context, sid string) (*Business, error)
}
