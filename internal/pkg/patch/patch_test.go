//go:build unit

package patch_test

import (
	"testing"

	"petstore-backend/internal/pkg/patch"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	v := 3.5
	assert.Equal(t, 3.5, patch.Coalesce(&v, 1.0))
	assert.Equal(t, 1.0, patch.Coalesce[float64](nil, 1.0))
}

func TestApply(t *testing.T) {
	name := "Old"
	patch.Apply(&name, nil)
	assert.Equal(t, "Old", name)

	next := "New"
	patch.Apply(&name, &next)
	assert.Equal(t, "New", name)

	empty := ""
	patch.Apply(&name, &empty)
	assert.Equal(t, "", name)
}
