package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guardkit/guardkit/pkg/sanitizer"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		transforms []func(string) string
		expected   string
	}{
		{
			name:       "applies single transform",
			input:      "  hello  ",
			transforms: []func(string) string{sanitizer.Trim},
			expected:   "hello",
		},
		{
			name:  "applies multiple transforms in sequence",
			input: "  HELLO WORLD  ",
			transforms: []func(string) string{
				sanitizer.Trim,
				sanitizer.ToLower,
			},
			expected: "hello world",
		},
		{
			name:  "applies complex transformation chain",
			input: "  Hello    World  ",
			transforms: []func(string) string{
				sanitizer.Trim,
				sanitizer.CollapseWhitespace,
				sanitizer.ToLower,
				func(s string) string { return sanitizer.MaxLength(s, 10) },
			},
			expected: "hello worl",
		},
		{
			name:       "no transforms returns input",
			input:      "unchanged",
			transforms: nil,
			expected:   "unchanged",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.Apply(tt.input, tt.transforms...))
		})
	}
}

func TestCompose(t *testing.T) {
	t.Parallel()

	normalize := sanitizer.Compose(
		sanitizer.Trim,
		sanitizer.CollapseWhitespace,
		sanitizer.ToLower,
	)

	assert.Equal(t, "hello world", normalize("  HELLO    World  "))
	assert.Equal(t, "", normalize("   "))
}

func TestApplyWithNonStringType(t *testing.T) {
	t.Parallel()

	double := func(n int) int { return n * 2 }
	addOne := func(n int) int { return n + 1 }

	assert.Equal(t, 7, sanitizer.Apply(3, double, addOne))
}
