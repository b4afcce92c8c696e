package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"point", "point", 0},
		{"point", "pointt", 1},
		{"point", "pint", 1},
		{"kitten", "sitting", 3},
		{"u32", "i32", 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Distance(tt.a, tt.b), "%q -> %q", tt.a, tt.b)
		assert.Equal(t, tt.want, Distance(tt.b, tt.a), "%q -> %q", tt.b, tt.a)
	}
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	candidates := []string{"point", "line", "color", "i32", "u32"}

	got, ok := Suggest("pointt", candidates)
	assert.True(t, ok)
	assert.Equal(t, "point", got)

	got, ok = Suggest("colour", candidates)
	assert.True(t, ok)
	assert.Equal(t, "color", got)

	got, ok = Suggest("x32", candidates)
	assert.True(t, ok)
	assert.Equal(t, "i32", got)

	_, ok = Suggest("rectangle", candidates)
	assert.False(t, ok)

	_, ok = Suggest("point", []string{"point"})
	assert.False(t, ok)
}
