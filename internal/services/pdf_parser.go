package services

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

type PDFParserService interface {
	ExtractText(filePath string) (string, error)
}

type pdfParserService struct{}

func NewPDFParserService() PDFParserService {
	return &pdfParserService{}
}

// ExtractText reads a stored PDF and returns the text of its non-empty pages
// joined by newlines, in page order. A PDF with no extractable text at all
// (e.g. scanned images) is an error, never an empty success.
func (p *pdfParserService) ExtractText(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var pages []string
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep going with the rest
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}

		pages = append(pages, text)
	}

	if len(pages) == 0 {
		return "", fmt.Errorf("no text content found in PDF")
	}

	return joinPages(pages), nil
}

func joinPages(pages []string) string {
	return strings.Join(pages, "\n")
}
