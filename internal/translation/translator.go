// Package translation translates document content into supported target
// languages while preserving section structure and types.
package translation

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/priyansh/legal-doc-agent/internal/llm"
)

// Translator converts a single piece of English text into a target language.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// Factory builds a translator for a language code.
type Factory func(langCode, langName string) Translator

// Cache memoizes per-language translators. It is owned by the caller and
// passed into the agent explicitly; there is no process-wide registry.
type Cache struct {
	mu          sync.Mutex
	factory     Factory
	translators map[string]Translator
}

// NewCache creates a cache that builds translators with the given factory.
func NewCache(factory Factory) *Cache {
	return &Cache{
		factory:     factory,
		translators: make(map[string]Translator),
	}
}

// Get returns the cached translator for a language, building it on first use.
func (c *Cache) Get(langCode, langName string) Translator {
	c.mu.Lock()
	defer c.mu.Unlock()
	if tr, ok := c.translators[langCode]; ok {
		return tr
	}
	tr := c.factory(langCode, langName)
	c.translators[langCode] = tr
	return tr
}

// GeminiFactory builds translators backed by the shared LLM client.
func GeminiFactory(client llm.Client) Factory {
	return func(langCode, langName string) Translator {
		return &geminiTranslator{client: client, langName: langName}
	}
}

type geminiTranslator struct {
	client   llm.Client
	langName string
}

func (t *geminiTranslator) Translate(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf(`Translate the following legal document text from English to %s.
Preserve formatting, line breaks, underscores, and any names exactly as written.
Respond with the translated text only, no commentary.

Text:
%s`, t.langName, text)

	translated, err := t.client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(translated), nil
}
