//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guillotegh/sistema-reservas/internal/pkg/errs"
)

func TestIs(t *testing.T) {
	t.Run("sees sentinels attached as marks", func(t *testing.T) {
		sentinel := errs.New("not found")
		cause := errors.New("no rows in result set")

		marked := errs.Mark(cause, sentinel)

		assert.True(t, errs.Is(marked, sentinel))
		// Marks are not part of the Unwrap chain, so stdlib misses them.
		assert.False(t, errors.Is(marked, sentinel))
		assert.True(t, errs.Is(marked, cause))
	})

	t.Run("still walks the regular wrap chain", func(t *testing.T) {
		cause := errors.New("boom")
		wrapped := errs.Wrap(cause, "context")

		assert.True(t, errs.Is(wrapped, cause))
	})

	t.Run("nil err matches nothing", func(t *testing.T) {
		assert.False(t, errs.Is(nil, errs.New("x")))
	})
}

func TestMark(t *testing.T) {
	t.Run("nil err collapses to the mark itself", func(t *testing.T) {
		sentinel := errs.New("x")
		assert.Equal(t, sentinel, errs.Mark(nil, sentinel))
	})
}

func TestExtractStackLines(t *testing.T) {
	t.Run("bounds the number of lines", func(t *testing.T) {
		err := errs.Wrap(errs.New("boom"), "context")
		lines := errs.ExtractStackLines(err, 3)

		assert.LessOrEqual(t, len(lines), 3)
		assert.Contains(t, lines[0], "boom")
	})

	t.Run("nil err yields nothing", func(t *testing.T) {
		assert.Nil(t, errs.ExtractStackLines(nil, 5))
	})
}
