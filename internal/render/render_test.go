package render

import (
	"strings"
	"testing"
	"time"

	"wordofday/internal/domain"

	"github.com/stretchr/testify/assert"
)

func testEntry() domain.Entry {
	return domain.Entry{
		Moment: time.Date(2025, 1, 16, 9, 0, 0, 0, time.UTC),
		Word: domain.Word{
			Text:         "ephemeral",
			Definition:   "Lasting for a very short time.",
			PartOfSpeech: domain.Adjective,
			Example:      "Fame is ephemeral.",
		},
		Index: 15,
	}
}

func TestText(t *testing.T) {
	entry := testEntry()

	tests := []struct {
		surface  domain.Surface
		expected string
	}{
		{
			surface:  domain.SurfaceSmall,
			expected: "WORD OF THE DAY\n*ephemeral*\nLasting for a very short time.",
		},
		{
			surface:  domain.SurfaceMedium,
			expected: "📖 WORD OF THE DAY\n*ephemeral*\nLasting for a very short time.",
		},
		{
			surface: domain.SurfaceLarge,
			expected: "📖 WORD OF THE DAY\n\n*ephemeral* _(adjective)_\nLasting for a very short time.\n" +
				"“Fame is ephemeral.”\n\n_Updated daily at midnight_",
		},
		{
			surface:  domain.SurfaceCircular,
			expected: "E",
		},
		{
			surface:  domain.SurfaceRectangular,
			expected: "*ephemeral*\nLasting for a very short time.",
		},
		{
			surface:  domain.SurfaceInline,
			expected: "📖 ephemeral",
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.surface), func(t *testing.T) {
			assert.Equal(t, tt.expected, Text(tt.surface, entry))
		})
	}
}

func TestText_AllSurfacesShowSameWord(t *testing.T) {
	entry := testEntry()

	for _, surface := range domain.Surfaces() {
		if surface == domain.SurfaceCircular {
			continue
		}
		assert.Contains(t, Text(surface, entry), "ephemeral", string(surface))
	}
}

func TestText_LargeWithoutOptionalFields(t *testing.T) {
	entry := domain.Entry{Word: domain.Word{Text: "candid", Definition: "Frank."}}

	result := Text(domain.SurfaceLarge, entry)

	assert.Equal(t, "📖 WORD OF THE DAY\n\n*candid*\nFrank.\n\n_Updated daily at midnight_", result)
}

func TestText_EscapesMarkdown(t *testing.T) {
	entry := domain.Entry{Word: domain.Word{
		Text:       "snake_case",
		Definition: "Words_joined by *underscores* like `this` [sic].",
		Example:    "Use snake_case here.",
	}}

	tests := []struct {
		surface  domain.Surface
		expected string
	}{
		{
			surface:  domain.SurfaceSmall,
			expected: "WORD OF THE DAY\n*snake\\_case*\nWords\\_joined by \\*underscores\\* like \\`this\\` \\[sic].",
		},
		{
			surface:  domain.SurfaceInline,
			expected: "📖 snake\\_case",
		},
		{
			surface:  domain.SurfaceRectangular,
			expected: "*snake\\_case*\nWords\\_joined by \\*underscores\\* like \\`this\\` \\[sic].",
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.surface), func(t *testing.T) {
			assert.Equal(t, tt.expected, Text(tt.surface, entry))
		})
	}

	interactive := Interactive(entry, 3)
	assert.Contains(t, interactive, "*snake\\_case*\nWords\\_joined")
	assert.Contains(t, interactive, "“Use snake\\_case here.”")
}

func TestText_LockScreenVariantsAreCompact(t *testing.T) {
	entry := testEntry()

	for _, surface := range domain.Surfaces() {
		if !surface.IsLockScreen() {
			continue
		}
		assert.NotContains(t, Text(surface, entry), header, string(surface))
	}
}

func TestInteractive(t *testing.T) {
	result := Interactive(testEntry(), 32)

	assert.True(t, strings.HasPrefix(result, "📖 WORD OF THE DAY"))
	assert.Contains(t, result, "*ephemeral* _(adjective)_")
	assert.True(t, strings.HasSuffix(result, "Word 16 of 32"))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{name: "short", input: "hello", max: 10, expected: "hello"},
		{name: "exact", input: "hello", max: 5, expected: "hello"},
		{name: "long", input: "hello world", max: 7, expected: "hello…"},
		{name: "multibyte", input: "привет мир", max: 4, expected: "при…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, truncate(tt.input, tt.max))
		})
	}
}

func TestInitial(t *testing.T) {
	assert.Equal(t, "É", initial("éclat"))
	assert.Equal(t, "", initial(""))
}
