package task

import "context"

// Repository is the ordered task collection.
type Repository interface {
	// Append adds the task at the end of the collection.
	Append(ctx context.Context, t *Task) error

	// List returns every task in insertion order.
	List(ctx context.Context) ([]*Task, error)

	// DeleteByID removes every task whose id equals id and reports how many were removed.
	DeleteByID(ctx context.Context, id string) (int, error)

	Len(ctx context.Context) (int, error)
}
