//go:build unit

package category_test

import (
	"testing"

	"petstore-backend/internal/domain/category"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	c, err := category.New("  Cat Toys ", "Things to chase")
	require.NoError(t, err)
	assert.Equal(t, "Cat Toys", c.Name)
	assert.Equal(t, "Things to chase", c.Description)

	_, err = category.New(" ", "")
	assert.ErrorIs(t, err, category.ErrEmptyName)
}
