package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Links holds the study material shown next to each week.
type Links struct {
	Course string   `yaml:"course"`
	Weeks  []string `yaml:"weeks"`
}

// Week returns the link for week i, or "" when none is configured.
func (l *Links) Week(i int) string {
	if l == nil || i < 0 || i >= len(l.Weeks) {
		return ""
	}
	return l.Weeks[i]
}

func ParseLinks(r io.Reader) (*Links, error) {
	var l Links
	if err := yaml.NewDecoder(r).Decode(&l); err != nil {
		if errors.Is(err, io.EOF) {
			return &l, nil
		}
		return nil, fmt.Errorf("decode resource links: %w", err)
	}
	return &l, nil
}

// LoadLinks reads the links file. A missing file yields no links.
func LoadLinks(path string) (*Links, error) {
	if path == "" {
		return &Links{}, nil
	}
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Links{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open resource links: %w", err)
	}
	defer f.Close()

	return ParseLinks(f)
}
