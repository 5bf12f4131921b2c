package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, NormalizeLimit(0))
	assert.Equal(t, DefaultLimit, NormalizeLimit(-3))
	assert.Equal(t, 10, NormalizeLimit(10))
	assert.Equal(t, MaxLimit, NormalizeLimit(MaxLimit+50))
}

func TestCursorRoundTrip(t *testing.T) {
	in := Cursor{
		CreatedAt: time.Date(2026, 8, 1, 12, 30, 0, 123456789, time.UTC),
		ID:        "ntf_42",
	}

	out, err := ParseCursor(EncodeCursor(in))
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.True(t, in.CreatedAt.Equal(out.CreatedAt))
	assert.Equal(t, in.ID, out.ID)
}

func TestParseCursorEmptyMeansFirstPage(t *testing.T) {
	out, err := ParseCursor("   ")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestParseCursorRejectsGarbage(t *testing.T) {
	_, err := ParseCursor("%%%not-base64%%%")
	assert.Error(t, err)

	// Valid base64 but missing the separator.
	_, err = ParseCursor("bm8tc2VwYXJhdG9y")
	assert.Error(t, err)
}
