package utils

import (
	"regexp"
	"strings"
)

// Insurance company is the hardest identity field: the text after the label
// can run straight into the adjuster's name, the shop address, or a phone
// number. Three strategies are tried in order until one yields a name.

const insurerLabel = "insurance company:"

// Strategy A: a run of letters/spaces/hyphens containing the word INSURANCE.
var insuranceNameRe = regexp.MustCompile(`(?i)([A-Z\-\s]+INSURANCE[A-Z\s]*)`)

// Strategy B: carriers that don't spell out "insurance" in their name.
var knownInsurers = []string{
	"STATE FARM", "GEICO", "ALLSTATE", "PROGRESSIVE", "FARMERS",
	"LIBERTY MUTUAL", "USAA", "NATIONWIDE", "TRAVELERS", "AMERICAN FAMILY",
	"AUTO CLUB", "MEEMIC", "BRISTOL WEST", "ESURANCE", "SAFECO",
}

// Strategy C denylist: person names, section words, 2-letter state codes,
// parenthesized phone fragments, and bare numbers that crowd the label.
var (
	skipTokenRe    = regexp.MustCompile(`(?i)^(WAGNER|MERILYN|OTHER|TROY|VEHICLE|INSPECTION|LOCATION|OWNER|HOME|BUSINESS|\d+|[A-Z]{2}|\([^)]*\))$`)
	companyTokenRe = regexp.MustCompile(`(?i)^[A-Z][A-Z\-]*$`)
	tokenPunct     = strings.NewReplacer(",", "", ".", "", ":", "", ";", "")
)

// Trailing-noise cleanup applied to whatever name a strategy found.
var (
	trailingSectionRe  = regexp.MustCompile(`(?i)\s+(VEHICLE|OWNER|INSPECTION|LOCATION|ADJUSTER)\b.*$`)
	trailingStreetRe   = regexp.MustCompile(`(?i)\s+(AVENUE|AVE|STREET|ST|DRIVE|DR|BLVD|BOULEVARD|ROAD|RD|LANE|LN|CIRCLE|CIR|COURT|CT|PLACE|PL)\b.*$`)
	trailingDigitsRe   = regexp.MustCompile(`\s+\d+.*$`)
	trailingPhoneRe    = regexp.MustCompile(`\s+\([0-9].*$`)
	trailingBusinessRe = regexp.MustCompile(`(?i)\s+Business\s*$`)
)

// ExtractInsuranceCompany locates the "Insurance Company:" label and applies
// the three strategies to the text that follows it. Returns empty string
// when the label is absent or no strategy yields a name.
func ExtractInsuranceCompany(text string) string {
	idx := strings.Index(strings.ToLower(text), insurerLabel)
	if idx == -1 {
		return ""
	}
	afterLabel := strings.TrimSpace(text[idx+len(insurerLabel):])

	name := matchInsuranceWord(afterLabel)
	if name == "" {
		name = matchKnownInsurer(afterLabel)
	}
	if name == "" {
		name = collectCompanyTokens(afterLabel)
	}
	if name == "" {
		return ""
	}

	name = trailingSectionRe.ReplaceAllString(name, "")
	name = trailingStreetRe.ReplaceAllString(name, "")
	name = trailingDigitsRe.ReplaceAllString(name, "")
	name = trailingPhoneRe.ReplaceAllString(name, "")
	name = trailingBusinessRe.ReplaceAllString(name, "")
	return SanitizeText(name)
}

func matchInsuranceWord(afterLabel string) string {
	if m := insuranceNameRe.FindStringSubmatch(afterLabel); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func matchKnownInsurer(afterLabel string) string {
	upper := strings.ToUpper(afterLabel)
	for _, insurer := range knownInsurers {
		if strings.Contains(upper, insurer) {
			return insurer
		}
	}
	return ""
}

// collectCompanyTokens walks the words after the label, skipping denylisted
// tokens until a candidate run of capitalized alphabetic tokens begins, then
// collects until the first non-matching token or four tokens, whichever
// comes first.
func collectCompanyTokens(afterLabel string) string {
	var candidates []string
	for _, word := range strings.Fields(afterLabel) {
		word = tokenPunct.Replace(strings.TrimSpace(word))

		if skipTokenRe.MatchString(word) {
			if len(candidates) > 0 {
				break
			}
			continue
		}

		if len(word) > 1 && companyTokenRe.MatchString(word) {
			candidates = append(candidates, strings.ToUpper(word))
			if len(candidates) >= 4 {
				break
			}
		} else if len(candidates) > 0 {
			break
		}
	}
	return strings.Join(candidates, " ")
}
