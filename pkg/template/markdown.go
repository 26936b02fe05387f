package template

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNotFound indicates the markdown template path does not resolve.
	ErrNotFound = errors.New("template file not found")

	// ErrInvalidFrontmatter indicates malformed YAML frontmatter.
	ErrInvalidFrontmatter = errors.New("invalid template frontmatter")

	// ErrConvertFailed indicates the markdown body could not be converted.
	ErrConvertFailed = errors.New("failed to convert markdown template")
)

// ParseMarkdown parses a markdown template with optional YAML frontmatter.
// A Subject key in the frontmatter becomes the template's default subject.
// Placeholders are extracted from the raw markdown source, before HTML
// conversion, so markup emitted by goldmark can never introduce tokens.
func ParseMarkdown(content []byte) (*Template, error) {
	metadata, body, err := splitFrontmatter(content)
	if err != nil {
		return nil, err
	}

	var htmlBody bytes.Buffer
	if err := goldmark.New().Convert(body, &htmlBody); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConvertFailed, err)
	}

	tpl := &Template{
		Markup:       markupHeader + htmlBody.String() + markupFooter,
		Placeholders: make(map[string]struct{}),
	}
	extractInto(tpl.Placeholders, string(body))

	if subject, ok := metadata["Subject"].(string); ok {
		tpl.Subject = subject
		extractInto(tpl.Placeholders, subject)
	}
	return tpl, nil
}

// ParseMarkdownFile reads and parses the markdown template at path.
func ParseMarkdownFile(path string) (*Template, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read template %s: %w", path, err)
	}
	return ParseMarkdown(content)
}

var frontmatterDelimiter = []byte("---")

// splitFrontmatter separates YAML frontmatter from the markdown body.
// Content without a leading delimiter is all body.
func splitFrontmatter(content []byte) (map[string]any, []byte, error) {
	if !bytes.HasPrefix(content, frontmatterDelimiter) {
		return map[string]any{}, content, nil
	}

	rest := bytes.TrimLeft(bytes.TrimPrefix(content, frontmatterDelimiter), "\r\n")
	end := bytes.Index(rest, frontmatterDelimiter)
	if end == -1 {
		return nil, nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}

	metadata := map[string]any{}
	if raw := bytes.TrimSpace(rest[:end]); len(raw) > 0 {
		if err := yaml.Unmarshal(raw, &metadata); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}

	body := bytes.TrimLeft(rest[end+len(frontmatterDelimiter):], "\r\n")
	return metadata, body, nil
}
