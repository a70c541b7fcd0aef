// Package prompt loads classification prompt templates: a YAML front matter
// block with generation parameters followed by the message body.
package prompt

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Placeholders substituted verbatim into the template body.
const (
	TripBlockPlaceholder        = "{{tripBlock}}"
	TransactionBlockPlaceholder = "{{transactionBlock}}"
)

const (
	defaultTemperature     = 0.1
	defaultMaxOutputTokens = 2048
)

//go:embed default.prompt
var defaultTemplate []byte

// Template is a parsed prompt file.
type Template struct {
	Model           string
	Temperature     float64
	MaxOutputTokens int
	Body            string
}

type frontMatter struct {
	Model  string `yaml:"model"`
	Config struct {
		Temperature     *float64 `yaml:"temperature"`
		MaxOutputTokens *int     `yaml:"maxOutputTokens"`
	} `yaml:"config"`
}

// Load reads the template at path, or the built-in template when path is empty.
func Load(path string) (*Template, error) {
	if path == "" {
		return Parse(defaultTemplate)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("prompt: read %s: %w", path, err)
	}

	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("prompt: %s: %w", path, err)
	}
	return t, nil
}

// Parse parses a prompt document. The front matter is optional; both
// placeholders must appear in the body.
func Parse(data []byte) (*Template, error) {
	fm, body, err := splitFrontMatter(data)
	if err != nil {
		return nil, err
	}

	var meta frontMatter
	if len(fm) > 0 {
		if err := yaml.Unmarshal(fm, &meta); err != nil {
			return nil, fmt.Errorf("parse front matter: %w", err)
		}
	}

	t := &Template{
		Model:           meta.Model,
		Temperature:     defaultTemperature,
		MaxOutputTokens: defaultMaxOutputTokens,
		Body:            strings.TrimSpace(string(body)),
	}
	if meta.Config.Temperature != nil {
		t.Temperature = *meta.Config.Temperature
	}
	if meta.Config.MaxOutputTokens != nil {
		t.MaxOutputTokens = *meta.Config.MaxOutputTokens
	}

	if t.MaxOutputTokens <= 0 {
		return nil, fmt.Errorf("maxOutputTokens must be > 0 (got %d)", t.MaxOutputTokens)
	}
	if !strings.Contains(t.Body, TripBlockPlaceholder) || !strings.Contains(t.Body, TransactionBlockPlaceholder) {
		return nil, errors.New("template body must contain " + TripBlockPlaceholder + " and " + TransactionBlockPlaceholder)
	}

	return t, nil
}

// Render substitutes both blocks into the body. An empty block renders as "None".
func (t *Template) Render(tripBlock, transactionBlock string) string {
	if strings.TrimSpace(tripBlock) == "" {
		tripBlock = "None"
	}
	if strings.TrimSpace(transactionBlock) == "" {
		transactionBlock = "None"
	}
	return strings.NewReplacer(
		TripBlockPlaceholder, tripBlock,
		TransactionBlockPlaceholder, transactionBlock,
	).Replace(t.Body)
}

var fence = []byte("---")

func splitFrontMatter(data []byte) (fm, body []byte, err error) {
	trimmed := bytes.TrimLeft(data, "\ufeff \t\r\n")
	if !bytes.HasPrefix(trimmed, fence) {
		return nil, data, nil
	}

	rest := skipLine(trimmed)
	if rest == nil {
		return nil, nil, errors.New("unterminated front matter")
	}
	if bytes.HasPrefix(rest, fence) {
		return nil, skipLine(rest), nil
	}

	end := bytes.Index(rest, []byte("\n---"))
	if end == -1 {
		return nil, nil, errors.New("unterminated front matter")
	}

	return rest[:end], skipLine(rest[end+1:]), nil
}

// skipLine drops everything up to and including the first newline.
func skipLine(b []byte) []byte {
	if i := bytes.IndexByte(b, '\n'); i != -1 {
		return b[i+1:]
	}
	return nil
}
