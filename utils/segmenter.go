package utils

import (
	"strings"

	"github.com/hseinsb/estimate-analyzer/apperrors"
	"github.com/hseinsb/estimate-analyzer/logger"
)

// Segments are the two text regions the extractors run over: page 1 carries
// the customer/vehicle block, the totals page carries the financial
// breakdown.
type Segments struct {
	IdentityText  string
	FinancialText string
	FinancialPage int // 1-based
	PageCount     int
	UsedFallback  bool
}

// SegmentPages selects the identity block (page 1, verbatim) and the
// financial block: the first page whose lowercased text contains
// "estimate total", else the last page. Returns ErrNoExtractableText when
// the document has no pages or page-1 text is blank after trimming; that is
// the only failure mode.
func SegmentPages(pages []string) (*Segments, error) {
	if len(pages) == 0 {
		return nil, apperrors.ErrNoExtractableText
	}
	if strings.TrimSpace(pages[0]) == "" {
		return nil, apperrors.ErrNoExtractableText
	}

	seg := &Segments{
		IdentityText: pages[0],
		PageCount:    len(pages),
	}

	for i, page := range pages {
		if strings.Contains(strings.ToLower(page), "estimate total") {
			seg.FinancialText = page
			seg.FinancialPage = i + 1
			return seg, nil
		}
	}

	// Diagnostic, not an error: the record may still parse.
	logger.GetLogger().Warnw("estimate totals page not found, using last page as fallback",
		"page_count", len(pages))
	seg.FinancialText = pages[len(pages)-1]
	seg.FinancialPage = len(pages)
	seg.UsedFallback = true
	return seg, nil
}
