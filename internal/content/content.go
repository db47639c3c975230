// Package content loads the card list shown by the carousel.
package content

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultSectionID is used when a section does not declare an id.
const DefaultSectionID = "soluciones"

var (
	ErrSectionNotFound   = errors.New("section not found")
	ErrDuplicateID       = errors.New("duplicate item id")
	ErrUnsupportedFormat = errors.New("unsupported content format")
	ErrNoKey             = errors.New("section key is required")
)

// Item is one card. Items are never mutated after loading.
type Item struct {
	ID    int    `koanf:"id"`
	Title string `koanf:"title"`
	Desc  string `koanf:"desc"`
	Image string `koanf:"image"`
	Icon  string `koanf:"icon"`
	Link  string `koanf:"link"`
}

// Section is a titled, ordered list of items.
type Section struct {
	ID       string `koanf:"id"`
	Title    string `koanf:"title"`
	Subtitle string `koanf:"subtitle"`
	Items    []Item `koanf:"items"`
}

// Len returns the number of items.
func (s Section) Len() int {
	return len(s.Items)
}

// Load reads the document at path and returns the section stored under key.
// The format is chosen from the file extension (.json, .toml, .yaml, .yml).
// Nested sections are addressed with dotted keys ("site.solutions").
func Load(path, key string) (Section, error) {
	if strings.TrimSpace(key) == "" {
		return Section{}, ErrNoKey
	}

	parser, err := parserFor(path)
	if err != nil {
		return Section{}, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return Section{}, fmt.Errorf("read %s: %w", path, err)
	}

	if !k.Exists(key) {
		return Section{}, fmt.Errorf("%w: %q in %s", ErrSectionNotFound, key, path)
	}

	var sec Section
	if err := k.Unmarshal(key, &sec); err != nil {
		return Section{}, fmt.Errorf("decode %q: %w", key, err)
	}

	if sec.ID == "" {
		sec.ID = DefaultSectionID
	}

	if err := Validate(sec.Items); err != nil {
		return Section{}, err
	}

	return sec, nil
}

// Validate checks that item ids are unique.
func Validate(items []Item) error {
	seen := make(map[int]bool, len(items))
	for _, it := range items {
		if seen[it.ID] {
			return fmt.Errorf("%w: %d", ErrDuplicateID, it.ID)
		}
		seen[it.ID] = true
	}
	return nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return json.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}
