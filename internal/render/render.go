// Package render turns an entry into the text shown by each surface.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"wordofday/internal/domain"
)

const header = "WORD OF THE DAY"

// Text renders entry for the given surface
func Text(surface domain.Surface, entry domain.Entry) string {
	if surface.IsLockScreen() {
		return lockScreen(surface, entry.Word)
	}

	word := entry.Word

	switch surface {
	case domain.SurfaceSmall:
		return joinLines(
			header,
			"*"+escape(word.Text)+"*",
			escape(truncate(word.Definition, 120)),
		)
	case domain.SurfaceLarge:
		return joinLines(
			"📖 "+header,
			"",
			"*"+escape(word.Text)+"*"+partOfSpeech(word),
			escape(word.Definition),
			example(word),
			"",
			"_Updated daily at midnight_",
		)
	default:
		return joinLines(
			"📖 "+header,
			"*"+escape(word.Text)+"*",
			escape(truncate(word.Definition, 160)),
		)
	}
}

// lockScreen renders the compact lock screen variants
func lockScreen(surface domain.Surface, word domain.Word) string {
	switch surface {
	case domain.SurfaceCircular:
		return escape(initial(word.Text))
	case domain.SurfaceRectangular:
		return joinLines(
			"*"+escape(word.Text)+"*",
			escape(truncate(word.Definition, 60)),
		)
	default:
		return "📖 " + escape(word.Text)
	}
}

// Interactive renders the entry for the chat surface
func Interactive(entry domain.Entry, total int) string {
	word := entry.Word

	return joinLines(
		"📖 "+header,
		"",
		"*"+escape(word.Text)+"*"+partOfSpeech(word),
		escape(word.Definition),
		example(word),
		"",
		fmt.Sprintf("Word %d of %d", entry.Index+1, total),
	)
}

func partOfSpeech(w domain.Word) string {
	if w.PartOfSpeech == "" {
		return ""
	}
	return " _(" + string(w.PartOfSpeech) + ")_"
}

func example(w domain.Word) string {
	if w.Example == "" {
		return ""
	}
	return "“" + escape(w.Example) + "”"
}

// markdown escapes the characters Telegram Markdown reads as entity markers
var markdown = strings.NewReplacer("_", `\_`, "*", `\*`, "`", "\\`", "[", `\[`)

// escape makes list-supplied text safe to send with tele.ModeMarkdown
func escape(s string) string {
	return markdown.Replace(s)
}

func initial(text string) string {
	r, _ := utf8.DecodeRuneInString(text)
	if r == utf8.RuneError {
		return ""
	}
	return strings.ToUpper(string(r))
}

// truncate shortens s to at most max runes, ending with an ellipsis
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:max-1])) + "…"
}

// joinLines joins lines, collapsing runs of blank lines and trimming the ends
func joinLines(lines ...string) string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l == "" && (len(out) == 0 || out[len(out)-1] == "") {
			continue
		}
		out = append(out, l)
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}
