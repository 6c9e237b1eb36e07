package translation

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/priyansh/legal-doc-agent/internal/types"
)

// Chunk limit for a single translation call. Longer texts are split on
// sentence boundaries.
const maxChunkLength = 400

// Agent translates whole content documents. Section types are never
// translated, only title and content text. A failed translation of any piece
// degrades to the original English text for that piece.
type Agent struct {
	cache *Cache
}

// NewAgent creates an agent using the caller-owned translator cache.
func NewAgent(cache *Cache) *Agent {
	return &Agent{cache: cache}
}

// TranslateDocument returns a copy of the content document with title and
// section content translated to the target language. English input is
// returned unchanged; an unsupported language code is an error.
func (a *Agent) TranslateDocument(ctx context.Context, content *types.ContentDocument, langCode string) (*types.ContentDocument, error) {
	if langCode == "en" {
		return content, nil
	}
	langName, ok := types.SupportedLanguages[langCode]
	if !ok {
		return nil, fmt.Errorf("unsupported language: %q", langCode)
	}

	translator := a.cache.Get(langCode, langName)
	translated := &types.ContentDocument{
		Title: a.translateText(ctx, translator, content.Title, langCode),
	}
	for _, section := range content.Sections {
		translated.Sections = append(translated.Sections, types.NamedSection{
			Name: section.Name,
			Section: types.Section{
				Type:    section.Type,
				Content: a.translateText(ctx, translator, section.Content, langCode),
			},
		})
	}
	return translated, nil
}

func (a *Agent) translateText(ctx context.Context, translator Translator, text, langCode string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}

	if len(text) <= maxChunkLength {
		translated, err := translator.Translate(ctx, text)
		if err != nil {
			log.Printf("[TRANSLATE] Translation to %s failed (%v), keeping original text", langCode, err)
			return text
		}
		return translated
	}

	var translated []string
	for _, chunk := range splitText(text, maxChunkLength) {
		out, err := translator.Translate(ctx, chunk)
		if err != nil {
			log.Printf("[TRANSLATE] Translation to %s failed (%v), keeping original text", langCode, err)
			return text
		}
		translated = append(translated, out)
	}
	return strings.Join(translated, " ")
}

// splitText breaks text into chunks below maxLength on sentence boundaries.
func splitText(text string, maxLength int) []string {
	sentences := strings.Split(text, ". ")
	var chunks []string
	var current strings.Builder

	for _, sentence := range sentences {
		if current.Len()+len(sentence) < maxLength {
			current.WriteString(sentence)
			current.WriteString(". ")
			continue
		}
		if current.Len() > 0 {
			chunks = append(chunks, strings.TrimSpace(current.String()))
			current.Reset()
		}
		current.WriteString(sentence)
		current.WriteString(". ")
	}
	if current.Len() > 0 {
		chunks = append(chunks, strings.TrimSpace(current.String()))
	}
	return chunks
}
