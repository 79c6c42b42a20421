package utils

import (
	"regexp"

	"github.com/hseinsb/estimate-analyzer/dto"
)

// Each identity field is extracted by an ordered list of pattern strategies;
// the first one that matches wins. PDF text extraction flattens the page
// layout, so a field can land on the same line as its label or drift onto
// the next fragment.

type fieldStrategy struct {
	name string
	re   *regexp.Regexp
}

var customerStrategies = []fieldStrategy{
	{"label same line", regexp.MustCompile(`(?i)Customer\s+Name\s+([A-Z\s,]+?)(?:\s+Job\s+Number|\s+Written|$)`)},
	{"label with line break", regexp.MustCompile(`(?i)Customer\s+Name\s*\n?\s*([A-Z\s,]+?)(?:\s+Job\s+Number|\s+Written|$)`)},
	{"customer colon", regexp.MustCompile(`(?i)Customer:\s*([A-Z\s,]+?)(?:\s+Job\s+Number|\s+Written|$)`)},
}

var jobNumberStrategies = []fieldStrategy{
	{"job number label", regexp.MustCompile(`(?i)Job\s+Number:\s*(\d+)`)},
}

var claimStrategies = []fieldStrategy{
	{"claim label", regexp.MustCompile(`(?i)Claim\s*#:\s*([A-Z0-9\-]+)`)},
}

// Vehicle fields anchor off the literal VEHICLE token followed by a 4-digit
// year, an uppercase make, and a model run terminated by known trim/section
// words.
var yearStrategies = []fieldStrategy{
	{"vehicle year", regexp.MustCompile(`(?i)VEHICLE\s+(\d{4})`)},
}

var makeStrategies = []fieldStrategy{
	{"vehicle make", regexp.MustCompile(`(?i)VEHICLE\s+\d{4}\s+([A-Z]+)`)},
}

var modelStrategies = []fieldStrategy{
	{"vehicle model", regexp.MustCompile(`(?i)VEHICLE\s+\d{4}\s+[A-Z]+\s+([A-Z0-9\s]+?)(?:\s+Elevation|\s+Crew|\s+VIN|$)`)},
}

var vinStrategies = []fieldStrategy{
	{"vin label", regexp.MustCompile(`(?i)VIN:\s*([A-Z0-9]{17})`)},
}

// firstMatch evaluates strategies in order and returns the first sanitized
// capture. Empty string means the field was not found.
func firstMatch(strategies []fieldStrategy, text string) string {
	for _, s := range strategies {
		if m := s.re.FindStringSubmatch(text); len(m) > 1 {
			if v := SanitizeText(m[1]); v != "" {
				return v
			}
		}
	}
	return ""
}

// ExtractIdentity pulls customer, job, claim, insurer, and vehicle fields
// out of the page-1 text. It never fails; absent fields stay empty and count
// against confidence.
func ExtractIdentity(identityText string) *dto.ExtractedData {
	return &dto.ExtractedData{
		CustomerName:     firstMatch(customerStrategies, identityText),
		JobNumber:        firstMatch(jobNumberStrategies, identityText),
		ClaimNumber:      firstMatch(claimStrategies, identityText),
		InsuranceCompany: ExtractInsuranceCompany(identityText),
		Vehicle: dto.Vehicle{
			Year:  firstMatch(yearStrategies, identityText),
			Make:  firstMatch(makeStrategies, identityText),
			Model: firstMatch(modelStrategies, identityText),
			VIN:   firstMatch(vinStrategies, identityText),
		},
	}
}
