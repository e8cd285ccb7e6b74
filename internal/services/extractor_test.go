package services

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	content := "John Doe\n\n  Skills  \nGo, SQL\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	extractor := NewTextExtractor()
	text, err := extractor.Extract(path)

	require.NoError(t, err)
	assert.Equal(t, "John Doe\nSkills\nGo, SQL", text)
}

func TestExtractPlainTextEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(path, []byte("   \n  "), 0644))

	extractor := NewTextExtractor()
	_, err := extractor.Extract(path)

	assert.Error(t, err)
}

func TestExtractDOCX(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.docx")
	writeTestDOCX(t, path,
		`<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`+
			`<w:p><w:r><w:t>Jane Smith</w:t></w:r></w:p>`+
			`<w:p><w:r><w:t>Backend </w:t></w:r><w:r><w:t>Developer</w:t></w:r></w:p>`+
			`</w:body></w:document>`)

	extractor := NewTextExtractor()
	text, err := extractor.Extract(path)

	require.NoError(t, err)
	assert.Equal(t, "Jane Smith\nBackend Developer", text)
}

func TestExtractDOCXWithoutBody(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.docx")

	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/other.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<nothing/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	extractor := NewTextExtractor()
	_, err = extractor.Extract(path)

	assert.Error(t, err)
}

func TestExtractUnsupportedExtension(t *testing.T) {
	extractor := NewTextExtractor()
	_, err := extractor.Extract("resume.exe")

	assert.Error(t, err)
}

func writeTestDOCX(t *testing.T, path, documentXML string) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
}
