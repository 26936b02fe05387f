package docfile

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testDocumentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p>
      <w:pPr>
        <w:jc w:val="center"/>
        <w:spacing w:before="120" w:after="240"/>
        <w:ind w:firstLine="420"/>
      </w:pPr>
      <w:r>
        <w:rPr>
          <w:b/>
          <w:rFonts w:ascii="Arial"/>
          <w:sz w:val="28"/>
          <w:color w:val="ff0000"/>
        </w:rPr>
        <w:t>Dear </w:t>
      </w:r>
      <w:r><w:t>{name}</w:t></w:r>
    </w:p>
    <w:p>
      <w:r>
        <w:rPr><w:i/><w:u w:val="single"/></w:rPr>
        <w:t>styled</w:t>
      </w:r>
    </w:p>
    <w:tbl>
      <w:tr>
        <w:tc><w:p><w:r><w:t>cell one</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>cell two</w:t></w:r></w:p></w:tc>
      </w:tr>
    </w:tbl>
    <w:p/>
  </w:body>
</w:document>`

func writeDocx(t *testing.T, documentXML string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.docx")
	f, err := os.Create(path)
	require.NoError(t, err)

	zw := zip.NewWriter(f)
	part, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = part.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	return path
}

func TestOpen_DecodesBlocksInOrder(t *testing.T) {
	t.Parallel()

	doc, err := Open(writeDocx(t, testDocumentXML))
	require.NoError(t, err)
	require.Len(t, doc.Blocks, 4)

	require.NotNil(t, doc.Blocks[0].Paragraph)
	require.NotNil(t, doc.Blocks[1].Paragraph)
	require.NotNil(t, doc.Blocks[2].Table)
	require.NotNil(t, doc.Blocks[3].Paragraph)
}

func TestOpen_ParagraphStyle(t *testing.T) {
	t.Parallel()

	doc, err := Open(writeDocx(t, testDocumentXML))
	require.NoError(t, err)

	style := doc.Blocks[0].Paragraph.Style
	require.NotNil(t, style.Alignment)
	require.Equal(t, AlignCenter, *style.Alignment)
	require.NotNil(t, style.SpacingBefore)
	require.Equal(t, 6.0, *style.SpacingBefore)
	require.NotNil(t, style.SpacingAfter)
	require.Equal(t, 12.0, *style.SpacingAfter)
	require.NotNil(t, style.FirstLineIndent)
	require.Equal(t, 21.0, *style.FirstLineIndent)
	require.Nil(t, style.LeftIndent)

	// Second paragraph sets nothing explicitly.
	plain := doc.Blocks[1].Paragraph.Style
	require.Nil(t, plain.Alignment)
	require.Nil(t, plain.SpacingBefore)
	require.Nil(t, plain.SpacingAfter)
}

func TestOpen_RunStyle(t *testing.T) {
	t.Parallel()

	doc, err := Open(writeDocx(t, testDocumentXML))
	require.NoError(t, err)

	runs := doc.Blocks[0].Paragraph.Runs
	require.Len(t, runs, 2)

	styled := runs[0]
	require.Equal(t, "Dear ", styled.Text)
	require.True(t, styled.Style.Bold)
	require.False(t, styled.Style.Italic)
	require.Equal(t, "Arial", styled.Style.FontFamily)
	require.NotNil(t, styled.Style.FontSize)
	require.Equal(t, 14.0, *styled.Style.FontSize)
	require.Equal(t, "FF0000", styled.Style.Color)

	plain := runs[1]
	require.Equal(t, "{name}", plain.Text)
	require.False(t, plain.Style.Bold)
	require.Empty(t, plain.Style.Color)

	emphasized := doc.Blocks[1].Paragraph.Runs[0]
	require.True(t, emphasized.Style.Italic)
	require.True(t, emphasized.Style.Underline)
}

func TestOpen_Table(t *testing.T) {
	t.Parallel()

	doc, err := Open(writeDocx(t, testDocumentXML))
	require.NoError(t, err)

	table := doc.Blocks[2].Table
	require.Len(t, table.Rows, 1)
	require.Len(t, table.Rows[0].Cells, 2)
	require.Equal(t, "cell one", table.Rows[0].Cells[0].Paragraphs[0].Text())
	require.Equal(t, "cell two", table.Rows[0].Cells[1].Paragraphs[0].Text())
}

func TestOpen_ParagraphText(t *testing.T) {
	t.Parallel()

	doc, err := Open(writeDocx(t, testDocumentXML))
	require.NoError(t, err)

	require.Equal(t, "Dear {name}", doc.Blocks[0].Paragraph.Text())
	require.Empty(t, doc.Blocks[3].Paragraph.Text())
}

func TestOpen_NotFound(t *testing.T) {
	t.Parallel()

	_, err := Open(filepath.Join(t.TempDir(), "missing.docx"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestOpen_NotAZip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.docx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip archive"), 0o644))

	_, err := Open(path)
	require.ErrorIs(t, err, ErrInvalidDocument)
}

func TestOpen_MissingDocumentPart(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	_, err = zw.Create("word/styles.xml")
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	_, err = Open(path)
	require.ErrorIs(t, err, ErrInvalidDocument)
}

func TestUnderline_NoneDisables(t *testing.T) {
	t.Parallel()

	const xmlBody = `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:rPr><w:u w:val="none"/></w:rPr><w:t>plain</w:t></w:r></w:p>
  </w:body>
</w:document>`

	doc, err := decodeDocument([]byte(xmlBody))
	require.NoError(t, err)
	require.False(t, doc.Blocks[0].Paragraph.Runs[0].Style.Underline)
}

func TestToggle_ExplicitOff(t *testing.T) {
	t.Parallel()

	const xmlBody = `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:rPr><w:b w:val="0"/></w:rPr><w:t>plain</w:t></w:r></w:p>
  </w:body>
</w:document>`

	doc, err := decodeDocument([]byte(xmlBody))
	require.NoError(t, err)
	require.False(t, doc.Blocks[0].Paragraph.Runs[0].Style.Bold)
}
