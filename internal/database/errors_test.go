package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/emilythestrangee/breadit-api/internal/errs"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"record not found", gorm.ErrRecordNotFound, errs.ErrNotFound},
		{"duplicated key", gorm.ErrDuplicatedKey, errs.ErrConstraintViolation},
		{"foreign key", gorm.ErrForeignKeyViolated, errs.ErrNotFound},
		{"pg unique", &pgconn.PgError{Code: "23505"}, errs.ErrConstraintViolation},
		{"pg foreign key", &pgconn.PgError{Code: "23503"}, errs.ErrNotFound},
		{"pg other", &pgconn.PgError{Code: "40001"}, errs.ErrTransient},
		{"deadline", context.DeadlineExceeded, errs.ErrTransient},
		{"anything else", errors.New("connection reset"), errs.ErrTransient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, translate(tt.in), tt.want)
		})
	}

	assert.NoError(t, translate(nil))
}
