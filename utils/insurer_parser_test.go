package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractInsuranceCompanyInsuranceWord(t *testing.T) {
	text := "Insurance Company: CITIZENS INSURANCE COMPANY OF THE MIDWEST"

	assert.Equal(t, "CITIZENS INSURANCE COMPANY OF THE MIDWEST", ExtractInsuranceCompany(text))
}

func TestExtractInsuranceCompanyStripsTrailingAddress(t *testing.T) {
	text := "Insurance Company: STATE FARM INSURANCE 123 Main Ave (555) 123-4567"

	assert.Equal(t, "STATE FARM INSURANCE", ExtractInsuranceCompany(text))
}

func TestExtractInsuranceCompanyKnownCarrier(t *testing.T) {
	// No "insurance" token in the name, so the known-carrier list kicks in.
	text := "Insurance Company: Geico Claims Dept"

	assert.Equal(t, "GEICO", ExtractInsuranceCompany(text))
}

func TestExtractInsuranceCompanyTokenCollection(t *testing.T) {
	// Unknown carrier without the word INSURANCE: collect capitalized
	// tokens, skipping the leading noise.
	text := "Insurance Company: TROY ACME MUTUAL 123 Main St"

	assert.Equal(t, "ACME MUTUAL", ExtractInsuranceCompany(text))
}

func TestExtractInsuranceCompanyStripsTrailingBusiness(t *testing.T) {
	text := "Insurance Company: ACME INSURANCE Business (248) 555-0100"

	assert.Equal(t, "ACME INSURANCE", ExtractInsuranceCompany(text))
}

func TestExtractInsuranceCompanyLabelMissing(t *testing.T) {
	assert.Empty(t, ExtractInsuranceCompany("Customer Name JOHN SMITH"))
	assert.Empty(t, ExtractInsuranceCompany(""))
}
