package utils

import (
	"regexp"
	"strings"

	"github.com/hseinsb/estimate-analyzer/dto"
)

// Simple totals-page fields: label, optional dollar sign, decimal number
// with optional thousands separators. First match in document order wins.
var (
	partsRe        = regexp.MustCompile(`(?i)Parts\s*\$?\s*([\d,]+\.?\d*)`)
	miscRe         = regexp.MustCompile(`(?i)Miscellaneous\s*\$?\s*([\d,]+\.?\d*)`)
	otherChargesRe = regexp.MustCompile(`(?i)Other\s*Charges\s*\$?\s*([\d,]+\.?\d*)`)
	subtotalRe     = regexp.MustCompile(`(?i)Subtotal\s*\$?\s*([\d,]+\.?\d*)`)
	grandTotalRe   = regexp.MustCompile(`(?i)Grand\s*Total\s*\$?\s*([\d,]+\.?\d*)`)
	customerPayRe  = regexp.MustCompile(`(?i)Customer\s*Pay\s*\$?\s*([\d,]+\.?\d*)`)
	insurancePayRe = regexp.MustCompile(`(?i)Insurance\s*Pay\s*\$?\s*([\d,]+\.?\d*)`)
)

// Labor lines repeat as "<Word> Labor <hours> hrs @ $ <rate> / hr <cost>".
// Every occurrence is classified by its keyword and only the trailing cost
// is kept.
var laborRe = regexp.MustCompile(`(?i)(\w+\s*Labor)\s*[\d.]+\s*hrs\s*@\s*\$\s*[\d.]+\s*/\s*hr\s*([\d,]+\.?\d*)`)

// Paint supplies and sales tax embed an intermediate rate, so the primary
// pattern anchors the full line shape and takes only the trailing cost. The
// fallback takes the last decimal number on the label's text line.
var (
	paintSuppliesRe         = regexp.MustCompile(`(?i)Paint\s*Supplies\s*[\d.]+\s*hrs\s*@\s*\$\s*[\d.]+\s*/\s*hr\s*([\d,]+\.?\d*)`)
	paintSuppliesFallbackRe = regexp.MustCompile(`(?im)Paint\s*Supplies.*?([\d,]+\.?\d*)\s*$`)
	salesTaxRe              = regexp.MustCompile(`(?i)Sales\s*Tax\s*\$\s*[\d,]+\.?\d*\s*@\s*[\d.]+\s*%\s*([\d,]+\.?\d*)`)
	salesTaxFallbackRe      = regexp.MustCompile(`(?im)Sales\s*Tax.*?([\d,]+\.?\d*)\s*$`)
)

// ExtractFinancials pulls the itemized dollar amounts out of the totals-page
// text. It never fails: every field is pre-seeded to 0.00 and simply stays
// there when no pattern matches. TotalLabor carries the running sum across
// every labor line regardless of category; the derived-totals pass re-derives
// it from the four categories afterwards.
func ExtractFinancials(financialText string) dto.Totals {
	var totals dto.Totals

	totals.Parts = matchAmount(partsRe, financialText)
	totals.Miscellaneous = matchAmount(miscRe, financialText)
	totals.OtherCharges = matchAmount(otherChargesRe, financialText)
	totals.Subtotal = matchAmount(subtotalRe, financialText)
	totals.GrandTotal = matchAmount(grandTotalRe, financialText)
	totals.CustomerPay = matchAmount(customerPayRe, financialText)
	totals.InsurancePay = matchAmount(insurancePayRe, financialText)

	extractLabor(financialText, &totals)

	totals.PaintSupplies = matchTieredAmount(paintSuppliesRe, paintSuppliesFallbackRe, financialText)
	totals.SalesTax = matchTieredAmount(salesTaxRe, salesTaxFallbackRe, financialText)

	return totals
}

func matchAmount(re *regexp.Regexp, text string) float64 {
	if m := re.FindStringSubmatch(text); len(m) > 1 {
		if v, ok := parseAmount(m[1]); ok {
			return NormalizeCurrency(v)
		}
	}
	return 0
}

func matchTieredAmount(primary, fallback *regexp.Regexp, text string) float64 {
	if m := primary.FindStringSubmatch(text); len(m) > 1 {
		if v, ok := parseAmount(m[1]); ok {
			return NormalizeCurrency(v)
		}
	}
	if m := fallback.FindStringSubmatch(text); len(m) > 1 {
		if v, ok := parseAmount(m[1]); ok {
			return NormalizeCurrency(v)
		}
	}
	return 0
}

func extractLabor(text string, totals *dto.Totals) {
	var totalLabor float64
	for _, m := range laborRe.FindAllStringSubmatch(text, -1) {
		v, ok := parseAmount(m[2])
		if !ok {
			continue
		}
		cost := NormalizeCurrency(v)
		totalLabor += cost

		switch label := strings.ToLower(m[1]); {
		case strings.Contains(label, "body"):
			totals.BodyLabor = cost
		case strings.Contains(label, "paint"):
			totals.PaintLabor = cost
		case strings.Contains(label, "mechanical"):
			totals.MechanicalLabor = cost
		case strings.Contains(label, "frame"):
			totals.FrameLabor = cost
		}
	}
	totals.TotalLabor = NormalizeCurrency(totalLabor)
}
