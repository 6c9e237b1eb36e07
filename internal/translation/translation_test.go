package translation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyansh/legal-doc-agent/internal/types"
)

type fakeTranslator struct {
	prefix string
	err    error
	calls  int
}

func (f *fakeTranslator) Translate(_ context.Context, text string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.prefix + text, nil
}

func fakeFactory(tr *fakeTranslator) Factory {
	return func(langCode, langName string) Translator { return tr }
}

func sampleContent() *types.ContentDocument {
	return &types.ContentDocument{
		Title: "Non-Disclosure Agreement",
		Sections: []types.NamedSection{
			{Name: "intro", Section: types.Section{Type: types.SectionParagraph, Content: "This is the introduction."}},
			{Name: "sig", Section: types.Section{Type: types.SectionSignature, Content: "Disclosing Party: Alice"}},
		},
	}
}

func TestTranslateDocumentEnglishPassthrough(t *testing.T) {
	tr := &fakeTranslator{prefix: "XX:"}
	agent := NewAgent(NewCache(fakeFactory(tr)))

	content := sampleContent()
	result, err := agent.TranslateDocument(context.Background(), content, "en")
	require.NoError(t, err)
	assert.Same(t, content, result)
	assert.Zero(t, tr.calls)
}

func TestTranslateDocumentUnsupportedLanguage(t *testing.T) {
	agent := NewAgent(NewCache(fakeFactory(&fakeTranslator{})))
	_, err := agent.TranslateDocument(context.Background(), sampleContent(), "xx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported language")
}

func TestTranslateDocumentTranslatesTextKeepsTypes(t *testing.T) {
	tr := &fakeTranslator{prefix: "ES:"}
	agent := NewAgent(NewCache(fakeFactory(tr)))

	result, err := agent.TranslateDocument(context.Background(), sampleContent(), "es")
	require.NoError(t, err)

	assert.Equal(t, "ES:Non-Disclosure Agreement", result.Title)
	require.Len(t, result.Sections, 2)
	assert.Equal(t, "intro", result.Sections[0].Name)
	assert.Equal(t, types.SectionParagraph, result.Sections[0].Type)
	assert.Equal(t, "ES:This is the introduction.", result.Sections[0].Content)
	assert.Equal(t, types.SectionSignature, result.Sections[1].Type)
}

func TestTranslateDocumentDegradesOnFailure(t *testing.T) {
	tr := &fakeTranslator{err: errors.New("model offline")}
	agent := NewAgent(NewCache(fakeFactory(tr)))

	content := sampleContent()
	result, err := agent.TranslateDocument(context.Background(), content, "fr")
	require.NoError(t, err)

	// Failed pieces keep their original English text.
	assert.Equal(t, content.Title, result.Title)
	assert.Equal(t, content.Sections[0].Content, result.Sections[0].Content)
}

func TestTranslateDocumentSkipsEmptyText(t *testing.T) {
	tr := &fakeTranslator{prefix: "DE:"}
	agent := NewAgent(NewCache(fakeFactory(tr)))

	content := &types.ContentDocument{
		Sections: []types.NamedSection{
			{Name: "blank", Section: types.Section{Type: types.SectionParagraph, Content: "   "}},
		},
	}
	result, err := agent.TranslateDocument(context.Background(), content, "de")
	require.NoError(t, err)
	assert.Equal(t, "   ", result.Sections[0].Content)
	assert.Zero(t, tr.calls)
}

func TestTranslateLongTextChunks(t *testing.T) {
	sentence := strings.Repeat("word ", 30) + "end."
	long := strings.Join([]string{sentence, sentence, sentence, sentence}, " ")
	require.Greater(t, len(long), maxChunkLength)

	tr := &fakeTranslator{prefix: ""}
	agent := NewAgent(NewCache(fakeFactory(tr)))

	content := &types.ContentDocument{
		Title: "t",
		Sections: []types.NamedSection{
			{Name: "long", Section: types.Section{Type: types.SectionParagraph, Content: long}},
		},
	}
	_, err := agent.TranslateDocument(context.Background(), content, "hi")
	require.NoError(t, err)
	// Title plus more than one chunk for the long section.
	assert.Greater(t, tr.calls, 2)
}

func TestSplitTextBoundaries(t *testing.T) {
	text := "First sentence. Second sentence. Third sentence."
	chunks := splitText(text, 20)
	require.NotEmpty(t, chunks)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 20+len("Second sentence. "))
	}
	assert.Contains(t, strings.Join(chunks, " "), "First sentence")
}

func TestCacheReusesTranslators(t *testing.T) {
	built := 0
	cache := NewCache(func(langCode, langName string) Translator {
		built++
		return &fakeTranslator{}
	})

	a := cache.Get("es", "Spanish")
	b := cache.Get("es", "Spanish")
	cache.Get("fr", "French")

	assert.Same(t, a, b)
	assert.Equal(t, 2, built)
}
