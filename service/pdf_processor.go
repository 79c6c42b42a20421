package service

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

type PDFProcessor interface {
	ExtractPageTexts(pdfData []byte) ([]string, error)
	PageCount(pdfData []byte) (int, error)
}

type pdfProcessor struct{}

func NewPDFProcessor() PDFProcessor {
	return &pdfProcessor{}
}

// ExtractPageTexts returns the text layer of each page in order. Words on
// the same row are joined with single spaces so the field patterns can match
// across the page's column layout.
func (p *pdfProcessor) ExtractPageTexts(pdfData []byte) (pages []string, err error) {
	defer func() {
		// ledongthuc/pdf panics on some malformed content streams.
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("pdf text extraction failed: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(pdfData), int64(len(pdfData)))
	if err != nil {
		return nil, err
	}

	totalPage := r.NumPage()
	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		var textBuilder strings.Builder
		rows, _ := page.GetTextByRow()
		for _, row := range rows {
			for i, word := range row.Content {
				if i > 0 {
					textBuilder.WriteString(" ")
				}
				textBuilder.WriteString(word.S)
			}
			textBuilder.WriteString("\n")
		}
		pages = append(pages, textBuilder.String())
	}
	return pages, nil
}

// PageCount validates the document structure and reports how many pages it
// has. Used as a cheap integrity check before text extraction.
func (p *pdfProcessor) PageCount(pdfData []byte) (int, error) {
	conf := model.NewDefaultConfiguration()
	n, err := api.PageCount(bytes.NewReader(pdfData), conf)
	if err != nil {
		return 0, fmt.Errorf("failed to read pdf structure: %w", err)
	}
	return n, nil
}
