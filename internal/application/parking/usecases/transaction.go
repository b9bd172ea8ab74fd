package usecases

import "context"

// TransactionManager runs a function inside a storage transaction, exposing
// the transaction to repositories through the context. Satisfied by
// db.TransactionManager.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
