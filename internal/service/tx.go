package service

import (
	"context"
	"errors"
	"time"

	"github.com/feliperufini/felskys-manager-api/internal/apierror"

	"gorm.io/gorm"
)

// isoTime renders a timestamp for API responses. Always converted to UTC
// first so the trailing Z is truthful regardless of the server timezone.
func isoTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// translate converts persistence errors into the apierror taxonomy. notFound
// is the message used when the record does not exist.
func translate(err error, notFound string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apierror.NotFound(notFound)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apierror.Integrity("Registro referenciado não existe ou ainda possui dependências.")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apierror.Conflict("Registro duplicado.")
	default:
		var e *apierror.Error
		if errors.As(err, &e) {
			return err
		}
		return apierror.Internal(err)
	}
}
