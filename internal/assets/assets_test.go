package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStyle(t *testing.T) {
	t.Parallel()

	css, err := LoadStyle(DefaultStyleName)
	require.NoError(t, err)
	assert.NotEmpty(t, css)

	_, err = LoadStyle("missing")
	assert.ErrorIs(t, err, ErrStyleNotFound)
}

func TestMustLoadStyle(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { MustLoadStyle(DefaultStyleName) })
	assert.PanicsWithValue(t, `assets: style not found: "missing"`, func() { MustLoadStyle("missing") })
}
