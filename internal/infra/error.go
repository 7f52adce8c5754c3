package infra

import (
	"errors"

	"canteen-core/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindConflict           RepositoryErrorKind = "CONFLICT"
	KindForbidden          RepositoryErrorKind = "FORBIDDEN"
)

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr classifies the low-level error unless an explicit kind is given.
func WrapRepoErr(msg string, err error, kinds ...RepositoryErrorKind) error {
	kind := classify(err)
	if len(kinds) > 0 {
		kind = kinds[0]
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func classify(err error) RepositoryErrorKind {
	if errors.Is(err, pgx.ErrNoRows) {
		return KindNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return KindDuplicateKey
		case "23503":
			return KindForeignKeyViolated
		}
	}
	return KindDBFailure
}
