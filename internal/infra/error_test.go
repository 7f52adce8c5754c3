//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"canteen-core/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErrClassification(t *testing.T) {
	cases := []struct {
		name string
		err  error
		kind infra.RepositoryErrorKind
	}{
		{"no rows maps to not found", pgx.ErrNoRows, infra.KindNotFound},
		{"unique violation maps to duplicate key", &pgconn.PgError{Code: "23505"}, infra.KindDuplicateKey},
		{"fk violation maps to foreign key", &pgconn.PgError{Code: "23503"}, infra.KindForeignKeyViolated},
		{"other pg error maps to db failure", &pgconn.PgError{Code: "57014"}, infra.KindDBFailure},
		{"plain error maps to db failure", errors.New("connection reset"), infra.KindDBFailure},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := infra.WrapRepoErr("query failed", tc.err)
			assert.True(t, infra.IsKind(err, tc.kind), "got %v", err)
		})
	}
}

func TestWrapRepoErrExplicitKind(t *testing.T) {
	// An explicit kind wins over classification
	err := infra.WrapRepoErr("order not cancellable", pgx.ErrNoRows, infra.KindConflict)
	assert.True(t, infra.IsKind(err, infra.KindConflict))
	assert.False(t, infra.IsKind(err, infra.KindNotFound))
}

func TestWrapRepoErrWrapping(t *testing.T) {
	base := errors.New("socket closed")
	err := infra.WrapRepoErr("insert failed", base)

	assert.ErrorIs(t, err, base)
	assert.Contains(t, err.Error(), "insert failed")

	assert.False(t, infra.IsKind(errors.New("unrelated"), infra.KindDBFailure))
}
