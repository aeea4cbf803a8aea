package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name         string
		page, size   int
		expectedPage int
		expectedSize int
	}{
		{"Valid values pass through", 2, 3, 2, 3},
		{"Zero page clamps to first page", 0, 5, 1, 5},
		{"Negative page clamps to first page", -4, 5, 1, 5},
		{"Zero size falls back to default", 1, 0, 1, DefaultSize},
		{"Negative size falls back to default", 3, -1, 3, DefaultSize},
		{"Oversized page is capped", 1, 1000, 1, MaxSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, size := Normalize(tt.page, tt.size)
			assert.Equal(t, tt.expectedPage, page)
			assert.Equal(t, tt.expectedSize, size)
		})
	}
}

func TestWindow(t *testing.T) {
	limit, offset := Window(2, 3)
	assert.Equal(t, 4, limit)
	assert.Equal(t, 3, offset)

	limit, offset = Window(0, 0)
	assert.Equal(t, DefaultSize+1, limit)
	assert.Equal(t, 0, offset)
}

func TestTrim(t *testing.T) {
	t.Run("Extra row means more pages", func(t *testing.T) {
		page := Trim([]int{1, 2, 3, 4}, 3)
		assert.Equal(t, []int{1, 2, 3}, page.Items)
		assert.True(t, page.HasMore)
	})

	t.Run("Short page is the last page", func(t *testing.T) {
		page := Trim([]int{10}, 3)
		assert.Equal(t, []int{10}, page.Items)
		assert.False(t, page.HasMore)
	})

	t.Run("Nil rows become an empty list", func(t *testing.T) {
		page := Trim[int](nil, 3)
		assert.NotNil(t, page.Items)
		assert.Empty(t, page.Items)
		assert.False(t, page.HasMore)
	})
}

func TestSlice(t *testing.T) {
	letters := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}

	page := Slice(letters, 2, 3)
	assert.Equal(t, []string{"D", "E", "F"}, page.Items)
	assert.True(t, page.HasMore)

	page = Slice(letters, 4, 3)
	assert.Equal(t, []string{"J"}, page.Items)
	assert.False(t, page.HasMore)

	page = Slice(letters, 3, 5)
	assert.Empty(t, page.Items)
	assert.False(t, page.HasMore)

	page = Slice(letters, 1, 10)
	assert.Len(t, page.Items, 10)
	assert.False(t, page.HasMore)
}
