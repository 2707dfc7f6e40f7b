package store

import (
	"context"

	"github.com/terraincognita07/kardia/internal/models"
)

// RemoteStore is the authoritative relational backend holding the
// symptoms table. Implementations return the stored rows verbatim; all
// ordering and filtering happens on the remote side.
type RemoteStore interface {
	// ListByUser returns every record for the user, most recent first
	// (created_at descending, id descending on ties).
	ListByUser(ctx context.Context, userName string) ([]models.SymptomRecord, error)

	// Insert stores the record and returns it with the assigned id.
	Insert(ctx context.Context, record models.SymptomRecord) (models.SymptomRecord, error)

	// Delete removes the record with the given id. Deleting an id that
	// does not exist is the store's concern, not an error here.
	Delete(ctx context.Context, id int64) error

	// Probe issues a lightweight bounded read to test reachability.
	Probe(ctx context.Context) error
}
