package extractor

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeiq/internal/domain"
)

func buildDOCX(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	f, err := w.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

const sampleDocumentXML = `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>
    <w:p><w:r><w:t>Senior Backend Engineer</w:t></w:r><w:r><w:t> at Example Corp</w:t></w:r></w:p>
    <w:p><w:r><w:t xml:space="preserve">  </w:t></w:r></w:p>
  </w:body>
</w:document>`

func TestExtract_DOCX(t *testing.T) {
	doc := &domain.UploadedDocument{
		Filename: "resume.docx",
		Format:   domain.FormatDOCX,
		Raw:      buildDOCX(t, sampleDocumentXML),
	}

	text, err := New().Extract(doc)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSenior Backend Engineer at Example Corp\n", text)
}

func TestExtract_DOCXMissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/styles.xml")
	require.NoError(t, err)
	_, _ = f.Write([]byte("<styles/>"))
	require.NoError(t, w.Close())

	doc := &domain.UploadedDocument{Filename: "resume.docx", Format: domain.FormatDOCX, Raw: buf.Bytes()}
	_, err = New().Extract(doc)
	assert.True(t, errors.Is(err, domain.ErrExtractionFailed))
}

func TestExtract_DOCXNotAZip(t *testing.T) {
	doc := &domain.UploadedDocument{Filename: "resume.docx", Format: domain.FormatDOCX, Raw: []byte("not a zip archive")}
	_, err := New().Extract(doc)
	assert.True(t, errors.Is(err, domain.ErrExtractionFailed))
}

func TestExtract_CorruptPDF(t *testing.T) {
	doc := &domain.UploadedDocument{Filename: "resume.pdf", Format: domain.FormatPDF, Raw: []byte("%PDF-1.4 truncated garbage")}
	_, err := New().Extract(doc)
	assert.True(t, errors.Is(err, domain.ErrExtractionFailed))
}

func TestExtract_UnsupportedFormat(t *testing.T) {
	doc := &domain.UploadedDocument{Filename: "resume.txt", Format: domain.FormatOther, Raw: []byte("plain text")}
	_, err := New().Extract(doc)
	assert.True(t, errors.Is(err, domain.ErrUnsupportedFormat))
}

func TestExtractTextFromStream_TjAndTJOperators(t *testing.T) {
	stream := []byte("BT\n(Jane Doe) Tj\nT*\n[(Senior ) (Engineer)] TJ\nET")
	text := extractTextFromStream(stream)
	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Senior Engineer")
}

func TestDecodePDFString_Escapes(t *testing.T) {
	assert.Equal(t, "(parens)", decodePDFString([]byte(`\(parens\)`)))
	assert.Equal(t, " ", decodePDFString([]byte(`\040`)))
	assert.Equal(t, "a\nb", decodePDFString([]byte(`a\nb`)))
}
