// internal/app/store/contact/contactstore.go
package contactstore

import (
	"context"

	"github.com/dalemusser/lwandasite/internal/app/system/remote"
	"github.com/dalemusser/lwandasite/internal/domain/models"
)

// Store writes contact form submissions.
type Store struct {
	provider *remote.Provider
}

// New creates a contact store.
func New(p *remote.Provider) *Store {
	return &Store{provider: p}
}

// Create inserts msg as one row of contact_messages. When the backend is
// not configured it fails with a ConfigurationUnavailable error before any
// network call is made.
func (s *Store) Create(ctx context.Context, msg models.ContactMessage) error {
	c, err := s.provider.Client()
	if err != nil {
		return err
	}
	return c.Insert(ctx, models.ContactMessagesTable, msg)
}
