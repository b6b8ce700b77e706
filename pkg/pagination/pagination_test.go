package pagination

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsNormalize(t *testing.T) {
	p := Params{Page: 0, Limit: 0}
	p.Normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.Limit)

	p = Params{Page: 3, Limit: 500}
	p.Normalize()
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 100, p.Limit)
}

func TestParamsOffset(t *testing.T) {
	p := Params{Page: 3, Limit: 20}
	assert.Equal(t, 40, p.Offset())
}

func TestNewMeta(t *testing.T) {
	meta := NewMeta(Params{Page: 2, Limit: 10}, 25)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, int64(25), meta.TotalCount)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)

	meta = NewMeta(Params{Page: 1, Limit: 10}, 0)
	assert.Equal(t, 1, meta.TotalPages)
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrev)
}

func TestCursorRoundTrip(t *testing.T) {
	c := Cursor{
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		ID:        uuid.New(),
	}

	token, err := c.Encode()
	require.NoError(t, err)

	decoded, err := DecodeCursor(token)
	require.NoError(t, err)
	assert.True(t, c.CreatedAt.Equal(decoded.CreatedAt))
	assert.Equal(t, c.ID, decoded.ID)
}

func TestDecodeCursorInvalid(t *testing.T) {
	_, err := DecodeCursor("not-a-cursor")
	assert.Error(t, err)
}
