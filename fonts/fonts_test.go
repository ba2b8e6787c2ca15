package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())

	for _, name := range []FontName{Regular, Title, Mono} {
		face := name.Get()
		require.NotNil(t, face)
		assert.Positive(t, face.Metrics().Height.Ceil())
	}
}

func TestLoadFontWithSize_BadData(t *testing.T) {
	err := LoadFontWithSize("broken", []byte("not a font"), 10)
	assert.ErrorContains(t, err, "parse font broken")
	assert.Panics(t, func() { FontName("broken").Get() })
}
