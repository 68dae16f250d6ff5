package domain

import (
	"fmt"
	"strings"
)

// PartOfSpeech is the grammatical class of a word
type PartOfSpeech string

const (
	Noun      PartOfSpeech = "noun"
	Verb      PartOfSpeech = "verb"
	Adjective PartOfSpeech = "adjective"
	Adverb    PartOfSpeech = "adverb"
	Other     PartOfSpeech = "other"
)

// ParsePartOfSpeech maps a free-form label to a PartOfSpeech.
// An empty label means "not set"; unknown labels map to Other.
func ParsePartOfSpeech(s string) PartOfSpeech {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return ""
	case "noun", "n", "n.":
		return Noun
	case "verb", "v", "v.":
		return Verb
	case "adjective", "adj", "adj.":
		return Adjective
	case "adverb", "adv", "adv.":
		return Adverb
	default:
		return Other
	}
}

// Word is a single vocabulary entry
type Word struct {
	Text         string
	Definition   string
	PartOfSpeech PartOfSpeech
	Example      string
}

// Validate checks that text and definition are present
func (w Word) Validate() error {
	if strings.TrimSpace(w.Text) == "" {
		return fmt.Errorf("%w: text is empty", ErrInvalidWord)
	}
	if strings.TrimSpace(w.Definition) == "" {
		return fmt.Errorf("%w: definition is empty for %q", ErrInvalidWord, w.Text)
	}
	return nil
}

// WordList is an ordered, fixed-length list of words.
// It is read-only once constructed.
type WordList struct {
	words []Word
}

// NewWordList validates words and freezes their order
func NewWordList(words []Word) (WordList, error) {
	if len(words) == 0 {
		return WordList{}, ErrEmptyList
	}
	for i, w := range words {
		if err := w.Validate(); err != nil {
			return WordList{}, fmt.Errorf("word at position %d: %w", i, err)
		}
	}

	frozen := make([]Word, len(words))
	copy(frozen, words)
	return WordList{words: frozen}, nil
}

// Len returns the number of words
func (l WordList) Len() int {
	return len(l.words)
}

// At returns the word at index i
func (l WordList) At(i int) Word {
	return l.words[i]
}

// Words returns a copy of the list contents
func (l WordList) Words() []Word {
	out := make([]Word, len(l.words))
	copy(out, l.words)
	return out
}
