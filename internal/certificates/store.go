// Package certificates verifies service-dog certificates.
package certificates

import (
	"context"
	"database/sql"
	stderrors "errors"
	"strings"
	"time"

	"hopeconnect/internal/common/errors"
	"hopeconnect/internal/common/logger"
	"hopeconnect/internal/models"
)

const selectCertificateSQL = `
	SELECT id, dog_name, handler_name, issued_on, expires_on, revoked
	FROM service_dog_certificates
	WHERE id = $1`

type Store struct {
	db     *sql.DB
	logger logger.Logger
	now    func() time.Time
}

func NewStore(db *sql.DB, log logger.Logger) *Store {
	return &Store{
		db:     db,
		logger: log.WithFields(map[string]interface{}{"component": "certificates"}),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Verify looks a certificate up by id. A certificate is valid when it is not
// revoked and has not expired; expiry is inclusive of the expiry date.
func (s *Store) Verify(ctx context.Context, id string) (*models.Certificate, error) {
	id = strings.ToUpper(strings.TrimSpace(id))
	if id == "" {
		return nil, errors.NewValidationError("certificate id is required")
	}

	var c models.Certificate
	err := s.db.QueryRowContext(ctx, selectCertificateSQL, id).Scan(
		&c.ID, &c.DogName, &c.HandlerName, &c.IssuedOn, &c.ExpiresOn, &c.Revoked,
	)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.NewCertificateNotFoundError(id)
	}
	if err != nil {
		return nil, errors.NewQueryError("verify_certificate", err)
	}

	today := s.now().Truncate(24 * time.Hour)
	c.Valid = !c.Revoked && !c.ExpiresOn.Before(today)

	s.logger.Debug("certificate verified", map[string]interface{}{
		"certificateId": c.ID,
		"valid":         c.Valid,
	})
	return &c, nil
}
