//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"petstore-backend/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, errs.Wrap(nil, "ctx"))
		assert.NoError(t, errs.Wrapf(nil, "ctx %d", 1))
	})

	t.Run("wrapped sentinel is still matched", func(t *testing.T) {
		err := errs.Wrap(errs.ErrPromotionNotFound, "load promotion")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrPromotionNotFound))
		assert.Contains(t, err.Error(), "load promotion")
	})
}

func TestMark(t *testing.T) {
	t.Run("nil error returns the mark", func(t *testing.T) {
		assert.Equal(t, errs.ErrDanglingReference, errs.Mark(nil, errs.ErrDanglingReference))
	})

	t.Run("marked error matches both", func(t *testing.T) {
		base := errs.New("category 9 missing")
		err := errs.Mark(base, errs.ErrDanglingReference)
		assert.True(t, errs.Is(err, errs.ErrDanglingReference))
		assert.Equal(t, "category 9 missing", err.Error())
	})
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 3))
	lines := errs.ExtractStackLines(errs.New("boom"), 2)
	assert.LessOrEqual(t, len(lines), 2)
	assert.Contains(t, lines[0], "boom")
}
