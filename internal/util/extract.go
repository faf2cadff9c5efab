package util

import (
	"bytes"
	"fmt"
	"html"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/fadilmartias/careerboost/internal/model"
	"github.com/gen2brain/go-fitz"
	"github.com/nguyenthenguyen/docx"
)

const (
	MimePDF  = "application/pdf"
	MimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeText = "text/plain"
)

var resumeTypes = map[string]string{
	".pdf":  MimePDF,
	".docx": MimeDocx,
	".txt":  MimeText,
}

// ResumeMIMEType maps an uploaded file name to the document type it is
// parsed as.
func ResumeMIMEType(filename string) (string, error) {
	mime, ok := resumeTypes[strings.ToLower(filepath.Ext(filename))]
	if !ok {
		return "", fmt.Errorf("%w: resume must be a .pdf, .docx or .txt file", model.ErrInvalidInput)
	}
	return mime, nil
}

// ExtractResumeText returns the plain text of an uploaded resume.
func ExtractResumeText(filename string, data []byte) (string, error) {
	mime, err := ResumeMIMEType(filename)
	if err != nil {
		return "", err
	}

	var text string
	switch mime {
	case MimePDF:
		text, err = extractPDFText(data)
	case MimeDocx:
		text, err = extractDocxText(data)
	default:
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%w: text resume is not valid UTF-8", model.ErrInvalidInput)
		}
		text = string(data)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: no text found in resume", model.ErrInvalidInput)
	}
	return text, nil
}

func extractPDFText(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var fullText bytes.Buffer
	for n := 0; n < doc.NumPage(); n++ {
		pageText, err := doc.Text(n)
		if err != nil {
			return "", fmt.Errorf("page %d: failed to extract text: %w", n+1, err)
		}
		if pageText = strings.TrimSpace(pageText); pageText != "" {
			fullText.WriteString(pageText)
			fullText.WriteString("\n\n")
		}
	}
	return fullText.String(), nil
}

var (
	docxParagraph = regexp.MustCompile(`</w:p>`)
	docxTab       = regexp.MustCompile(`<w:tab/>`)
	docxBreak     = regexp.MustCompile(`<w:(?:br|cr)(?:\s[^>]*)?/>`)
	xmlTag        = regexp.MustCompile(`<[^>]+>`)
)

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	// GetContent is the raw document.xml body
	content := doc.Editable().GetContent()
	content = docxParagraph.ReplaceAllString(content, "\n")
	content = docxTab.ReplaceAllString(content, "\t")
	content = docxBreak.ReplaceAllString(content, "\n")
	content = xmlTag.ReplaceAllString(content, "")
	return html.UnescapeString(content), nil
}
