package template

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMarkdown_FrontmatterSubject(t *testing.T) {
	t.Parallel()

	tpl, err := ParseMarkdown([]byte(`---
Subject: Welcome {name}
---
Hello **{name}**, your department is {dept}.
`))
	require.NoError(t, err)

	require.Equal(t, "Welcome {name}", tpl.Subject)
	require.Contains(t, tpl.Markup, "<strong>{name}</strong>")
	require.Len(t, tpl.Placeholders, 2)
	require.Contains(t, tpl.Placeholders, "name")
	require.Contains(t, tpl.Placeholders, "dept")
}

func TestParseMarkdown_NoFrontmatter(t *testing.T) {
	t.Parallel()

	tpl, err := ParseMarkdown([]byte("Hello {name}"))
	require.NoError(t, err)
	require.Empty(t, tpl.Subject)
	require.Contains(t, tpl.Placeholders, "name")
}

func TestParseMarkdown_UnclosedFrontmatter(t *testing.T) {
	t.Parallel()

	_, err := ParseMarkdown([]byte("---\nSubject: broken\n"))
	require.ErrorIs(t, err, ErrInvalidFrontmatter)
}

func TestParseMarkdown_InvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := ParseMarkdown([]byte("---\n: [unbalanced\n---\nbody"))
	require.ErrorIs(t, err, ErrInvalidFrontmatter)
}

func TestParseMarkdownFile_NotFound(t *testing.T) {
	t.Parallel()

	_, err := ParseMarkdownFile(filepath.Join(t.TempDir(), "missing.md"))
	require.ErrorIs(t, err, ErrNotFound)
}
