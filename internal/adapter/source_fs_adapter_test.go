package adapter

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/casereach/internal/model"
)

const minimalDocument = `module: M
statements:
  - selector: {ident: x}
    blocks:
      - clauses:
          - value: {lit: "1"}
`

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("non recursive skips nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "a.yaml"), minimalDocument)

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		writeTestFile(t, filepath.Join(nestedDir, "b.yaml"), minimalDocument)

		var visited []string
		err := adapter.Walk(m.Path(root), false, func(path string, _ os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			visited = append(visited, path)

			return nil
		})
		require.NoError(t, err)

		for _, forbidden := range []string{nestedDir, filepath.Join(nestedDir, "b.yaml")} {
			assert.NotContainsf(t, visited, forbidden, "Walk() visited %s when recursive is false", forbidden)
		}

		assert.Contains(t, visited, filepath.Join(root, "a.yaml"))
	})

	t.Run("recursive visits nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		child := filepath.Join(nestedDir, "b.yaml")
		writeTestFile(t, child, minimalDocument)

		var visited []string
		err := adapter.Walk(m.Path(root), true, func(path string, _ os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			visited = append(visited, path)

			return nil
		})
		require.NoError(t, err)
		assert.Contains(t, visited, child)
	})
}

func TestLocalSourceFSAdapter_Get(t *testing.T) {
	root := t.TempDir()

	writeTestFile(t, filepath.Join(root, "b.yaml"), minimalDocument)
	writeTestFile(t, filepath.Join(root, "a.yml"), minimalDocument)
	writeTestFile(t, filepath.Join(root, "notes.yaml"), "title: not a module\n")
	writeTestFile(t, filepath.Join(root, "readme.txt"), minimalDocument)
	writeTestFile(t, filepath.Join(root, ".casereach.yaml"), minimalDocument)

	nested := filepath.Join(root, "sub")
	mustMkdir(t, nested)
	writeTestFile(t, filepath.Join(nested, "c.yaml"), minimalDocument)

	hidden := filepath.Join(root, ".git")
	mustMkdir(t, hidden)
	writeTestFile(t, filepath.Join(hidden, "d.yaml"), minimalDocument)

	adapter := NewLocalSourceFSAdapter()

	t.Run("flat root keeps module documents only", func(t *testing.T) {
		sources, err := adapter.Get([]m.Path{m.Path(root)})
		require.NoError(t, err)

		assert.Equal(t, []string{"a.yml", "b.yaml"}, baseNames(sources))
	})

	t.Run("recursive root skips hidden directories", func(t *testing.T) {
		sources, err := adapter.Get([]m.Path{m.Path(root + "/...")})
		require.NoError(t, err)

		assert.Equal(t, []string{"a.yml", "b.yaml", "c.yaml"}, baseNames(sources))
	})

	t.Run("duplicate roots are merged", func(t *testing.T) {
		file := filepath.Join(root, "b.yaml")

		sources, err := adapter.Get([]m.Path{m.Path(file), m.Path(root)})
		require.NoError(t, err)

		assert.Equal(t, []string{"a.yml", "b.yaml"}, baseNames(sources))
	})

	t.Run("sources carry the content hash", func(t *testing.T) {
		sources, err := adapter.Get([]m.Path{m.Path(filepath.Join(root, "b.yaml"))})
		require.NoError(t, err)
		require.Len(t, sources, 1)

		assert.Equal(t, fmt.Sprintf("%x", sha256.Sum256([]byte(minimalDocument))), sources[0].Origin.Hash)
		assert.True(t, filepath.IsAbs(string(sources[0].Origin.Path)))
	})

	t.Run("missing root fails", func(t *testing.T) {
		_, err := adapter.Get([]m.Path{m.Path(filepath.Join(root, "missing"))})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "root path error")
	})

	t.Run("no roots", func(t *testing.T) {
		sources, err := adapter.Get(nil)
		require.NoError(t, err)
		assert.Empty(t, sources)
	})
}

func TestParseRootPath(t *testing.T) {
	tests := []struct {
		in        string
		path      string
		recursive bool
	}{
		{"...", ".", true},
		{"./...", ".", true},
		{"src/...", "src", true},
		{"src", "src", false},
		{"a.yaml", "a.yaml", false},
	}

	for _, tt := range tests {
		path, recursive := parseRootPath(tt.in)
		assert.Equal(t, tt.path, path, tt.in)
		assert.Equal(t, tt.recursive, recursive, tt.in)
	}
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(path, 0o750))
}

func baseNames(sources []m.Source) []string {
	names := make([]string, 0, len(sources))
	for _, s := range sources {
		names = append(names, filepath.Base(string(s.Origin.Path)))
	}

	return names
}
