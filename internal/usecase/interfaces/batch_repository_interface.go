package interfaces

import (
	"context"
	"errors"

	"agritrade/internal/domain/entities"
)

// ErrVersionConflict is returned by Save when the batch was modified since it
// was read. Callers re-read and decide whether to retry.
var ErrVersionConflict = errors.New("batch version conflict")

// ErrAlreadyExists is returned by Create when the id is already taken, so a
// replayed create surfaces as a conflict rather than a server fault.
var ErrAlreadyExists = errors.New("batch already exists")

// IBatchRepository abstracts DynamoDB persistence for Batch.
//
// Concurrency contract:
//   - Create fails when the id already exists.
//   - Save is a compare-and-swap on the version the batch was read at; there is
//     no read-then-separately-write path. Every state transition and quantity
//     mutation goes through it as a single atomic attempt.

type IBatchRepository interface {
	Create(ctx context.Context, b entities.Batch) (entities.Batch, error)
	GetByID(ctx context.Context, id string) (entities.Batch, error)
	List(ctx context.Context) ([]entities.Batch, error)
	Save(ctx context.Context, b entities.Batch) (entities.Batch, error)
}
