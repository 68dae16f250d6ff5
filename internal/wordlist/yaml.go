package wordlist

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"wordofday/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed words.yaml
var defaultWords []byte

type yamlDocument struct {
	Words []yamlWord `yaml:"words"`
}

type yamlWord struct {
	Word         string `yaml:"word"`
	Definition   string `yaml:"definition"`
	PartOfSpeech string `yaml:"part_of_speech"`
	Example      string `yaml:"example"`
}

// ParseYAML decodes a word list document
func ParseYAML(r io.Reader) ([]domain.Word, error) {
	var doc yamlDocument

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode word list: %w", err)
	}

	words := make([]domain.Word, 0, len(doc.Words))
	for _, w := range doc.Words {
		words = append(words, domain.Word{
			Text:         w.Word,
			Definition:   w.Definition,
			PartOfSpeech: domain.ParsePartOfSpeech(w.PartOfSpeech),
			Example:      w.Example,
		})
	}
	return words, nil
}

// EmbeddedRepo serves the word list compiled into the binary
type EmbeddedRepo struct{}

// NewEmbeddedRepo creates a repository over the built-in list
func NewEmbeddedRepo() *EmbeddedRepo {
	return &EmbeddedRepo{}
}

// ListWords returns the built-in words
func (r *EmbeddedRepo) ListWords() ([]domain.Word, error) {
	return ParseYAML(bytes.NewReader(defaultWords))
}

// YAMLFileRepo reads the word list from a YAML file
type YAMLFileRepo struct {
	path string
}

// NewYAMLFileRepo creates a repository for the given file
func NewYAMLFileRepo(path string) *YAMLFileRepo {
	return &YAMLFileRepo{path: path}
}

// ListWords reads and decodes the file
func (r *YAMLFileRepo) ListWords() ([]domain.Word, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	return ParseYAML(f)
}
