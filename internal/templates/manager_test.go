package templates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyansh/legal-doc-agent/internal/docx"
	"github.com/priyansh/legal-doc-agent/internal/styles"
	"github.com/priyansh/legal-doc-agent/internal/types"
)

func writeTemplate(t *testing.T, dir, name string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	c, err := docx.NewBlank()
	require.NoError(t, err)
	c.AppendParagraph(&docx.Paragraph{
		Properties: &docx.ParagraphProperties{Style: &docx.StyleRef{Val: "Heading1"}},
		Runs: []docx.Run{{
			Properties: &docx.RunProperties{
				Font: &docx.Fonts{ASCII: "Garamond", HAnsi: "Garamond"},
				Size: &docx.HalfPointSize{Val: 32},
			},
			Text: &docx.Text{Content: "Heading"},
		}},
	})
	path := filepath.Join(dir, name)
	require.NoError(t, c.Save(path))
	return path
}

func newManager(t *testing.T) (*Manager, string, string) {
	t.Helper()
	root := t.TempDir()
	userDir := filepath.Join(root, "templates")
	baseDir := filepath.Join(root, "templates", "base")
	workingDir := filepath.Join(root, "working")
	store := styles.NewStore(filepath.Join(root, "styles"))
	return NewManager(userDir, baseDir, workingDir, store), userDir, baseDir
}

func TestListMergesAndSorts(t *testing.T) {
	manager, userDir, baseDir := newManager(t)
	writeTemplate(t, baseDir, "nda.docx")
	writeTemplate(t, baseDir, "contract.docx")
	writeTemplate(t, userDir, "nda.docx")
	writeTemplate(t, userDir, "mou.docx")
	require.NoError(t, os.WriteFile(filepath.Join(userDir, "notes.txt"), []byte("x"), 0o644))

	names, err := manager.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"contract.docx", "mou.docx", "nda.docx"}, names)
}

func TestListMissingDirectories(t *testing.T) {
	manager, _, _ := newManager(t)
	names, err := manager.List()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestFindCaseInsensitiveUserPrecedence(t *testing.T) {
	manager, userDir, baseDir := newManager(t)
	writeTemplate(t, baseDir, "NDA.docx")
	userPath := writeTemplate(t, userDir, "nda.docx")

	assert.Equal(t, userPath, manager.Find("NDA"))
	assert.Equal(t, userPath, manager.Find("nda.docx"))
	assert.Empty(t, manager.Find("lease"))
}

func TestPrepareWorkingCopy(t *testing.T) {
	manager, _, baseDir := newManager(t)
	writeTemplate(t, baseDir, "Contract.docx")

	workingPath, err := manager.PrepareWorkingCopy("contract")
	require.NoError(t, err)
	assert.Equal(t, "contract_working.docx", filepath.Base(workingPath))

	// The copy is a valid document.
	_, err = docx.Open(workingPath)
	require.NoError(t, err)

	_, err = manager.PrepareWorkingCopy("unknown")
	require.Error(t, err)
}

func TestRegisterExtractsStyles(t *testing.T) {
	root := t.TempDir()
	store := styles.NewStore(filepath.Join(root, "styles"))
	manager := NewManager(
		filepath.Join(root, "templates"),
		filepath.Join(root, "templates", "base"),
		filepath.Join(root, "working"),
		store,
	)

	source := writeTemplate(t, filepath.Join(root, "uploads"), "custom.docx")
	dest, err := manager.Register(source, types.CategoryNDA)
	require.NoError(t, err)
	assert.Equal(t, "nda.docx", filepath.Base(dest))

	profile, err := store.Load(types.CategoryNDA)
	require.NoError(t, err)
	assert.Equal(t, "Garamond", profile["Heading 1"].Font)
}
