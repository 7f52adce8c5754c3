//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"canteen-core/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestIsSeesMarkedSentinel(t *testing.T) {
	sentinel := errors.New("sentinel")
	inner := errors.New("inner cause")

	marked := errs.Mark(inner, sentinel)

	assert.True(t, errs.Is(marked, sentinel))
	// The mark replaces wrapping; the cause stays reachable too.
	assert.True(t, errs.Is(marked, inner))
	assert.False(t, errs.Is(marked, errors.New("unrelated")))

	// Stdlib matching only follows the Unwrap chain, never the mark.
	// Every sentinel check therefore has to use errs.Is.
	assert.False(t, errors.Is(marked, sentinel))
}

func TestIsSeesPlainSentinels(t *testing.T) {
	sentinel := errors.New("sentinel")

	assert.True(t, errs.Is(sentinel, sentinel))
	assert.True(t, errs.Is(errs.Wrap(sentinel, "context"), sentinel))
	assert.False(t, errs.Is(nil, sentinel))
}

func TestMarkNilCause(t *testing.T) {
	sentinel := errors.New("sentinel")
	assert.Equal(t, sentinel, errs.Mark(nil, sentinel))
}
