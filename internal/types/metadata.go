//nolint:revive // types is a standard Go package name pattern
package types

// ExtractedData holds the metadata fields pulled from a scenario description,
// keyed by field name (e.g. "Name", "Company", "Date").
type ExtractedData map[string]string

// GenerationMetadata summarizes one completed document generation run.
type GenerationMetadata struct {
	Category            DocumentCategory `json:"doc_type"`
	Language            string           `json:"language"`
	LanguageCode        string           `json:"language_code"`
	ExtractedFields     ExtractedData    `json:"extracted_fields"`
	SectionsGenerated   int              `json:"sections_generated"`
	ProcessingTimeMS    int64            `json:"processing_time_ms"`
	TemplateUsed        bool             `json:"template_used"`
	TemplateFilename    string           `json:"template_filename,omitempty"`
	TranslationStatus   string           `json:"translation_status"`
	Scenario            string           `json:"scenario"`
	GenerationTimestamp string           `json:"generation_timestamp"`
	MissingFieldsFilled []string         `json:"missing_fields_filled,omitempty"`
	FinalFilename       string           `json:"final_filename"`
}
