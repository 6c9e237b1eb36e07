// Package types provides type definitions for structured data used throughout the legal document agent.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"
)

// DocumentCategory identifies the kind of legal document being produced.
// It drives signature layout selection and structural validation.
type DocumentCategory string

// Supported document categories. This is a closed set; any other value must
// be rejected before reaching the assembly core.
const (
	CategoryNDA         DocumentCategory = "NDA"
	CategoryOfferLetter DocumentCategory = "Offer_Letter"
	CategoryContract    DocumentCategory = "Contract"
	CategoryMOU         DocumentCategory = "MOU"
	CategoryIPAgreement DocumentCategory = "IP_Agreement"
)

// Categories returns all supported document categories in declaration order.
func Categories() []DocumentCategory {
	return []DocumentCategory{
		CategoryNDA,
		CategoryOfferLetter,
		CategoryContract,
		CategoryMOU,
		CategoryIPAgreement,
	}
}

// ParseCategory validates a raw category string against the closed set.
func ParseCategory(s string) (DocumentCategory, error) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unsupported document category: %q", s)
}

// RequiresSingleSignature reports whether the category uses the single-party
// signature layout. Every non-NDA category currently falls through to the
// dual-party layout; keep this predicate as the single dispatch point if that
// ever changes per category.
func (c DocumentCategory) RequiresSingleSignature() bool {
	return c == CategoryNDA
}

// StyleFileName returns the per-category style file name used by the style store.
func (c DocumentCategory) StyleFileName() string {
	return fmt.Sprintf("%s_style.json", strings.ToLower(string(c)))
}

// SupportedLanguages maps language codes to display names for translation.
var SupportedLanguages = map[string]string{
	"en": "English",
	"hi": "Hindi",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"it": "Italian",
	"pt": "Portuguese",
	"ru": "Russian",
	"ja": "Japanese",
	"ko": "Korean",
	"ar": "Arabic",
	"zh": "Chinese",
}
