package adapter

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/casereach/internal/model"
)

func TestLocalReportStore_SaveReports_WritesHashedYAMLPerReport(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rs := &LocalReportStore{}

	report := m.Report{
		Source:     "/abs/docs/module1.yaml",
		Hash:       "abc123",
		Module:     "Module1",
		Statements: 2,
		Findings: []m.Finding{
			{
				Kind:      m.FindingUnreachableCase,
				Statement: "Foo.1",
				Block:     1,
				Clause:    -1,
				Text:      "Case 50",
				Message:   "Case block can never be entered",
				At:        m.Position{Line: 7, Column: 5},
			},
		},
	}

	require.NoError(t, rs.SaveReports(m.Path(dir), []m.Report{report}))

	name := rs.computeReportHash(report.Source) + ".yaml"
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{16}\.yaml$`), name)

	info, err := os.Stat(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())

	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Contains(t, string(data), "kind: UnreachableCase")
	assert.Contains(t, string(data), "line: 7")

	loaded, err := rs.LoadReports(m.Path(dir))
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, report, loaded[0])
}

func TestLocalReportStore_SaveReports_ReplacesReportForSameSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rs := NewReportStore()

	first := m.Report{Source: "a.yaml", Statements: 1, Findings: []m.Finding{{Kind: m.FindingTypeMismatch}}}
	second := m.Report{Source: "a.yaml", Statements: 1, Findings: []m.Finding{}, Abandoned: true}

	require.NoError(t, rs.SaveReports(m.Path(dir), []m.Report{first}))
	require.NoError(t, rs.SaveReports(m.Path(dir), []m.Report{second}))

	loaded, err := rs.LoadReports(m.Path(dir))
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.True(t, loaded[0].Abandoned)
	assert.Empty(t, loaded[0].Findings)
}

func TestLocalReportStore_LoadReports_SortedAndFiltered(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rs := NewReportStore()

	reports := []m.Report{
		{Source: "z.yaml", Findings: []m.Finding{}},
		{Source: "a.yaml", Findings: []m.Finding{}, Error: "decode a.yaml: bad"},
		{Source: "m.yaml", Findings: []m.Finding{}},
	}
	require.NoError(t, rs.SaveReports(m.Path(dir), reports))

	writeTestFile(t, filepath.Join(dir, "notes.txt"), "ignored")
	mustMkdir(t, filepath.Join(dir, "sub.yaml"))

	loaded, err := rs.LoadReports(m.Path(dir))
	require.NoError(t, err)
	require.Len(t, loaded, 3)

	assert.Equal(t, m.Path("a.yaml"), loaded[0].Source)
	assert.Equal(t, "decode a.yaml: bad", loaded[0].Error)
	assert.Equal(t, m.Path("m.yaml"), loaded[1].Source)
	assert.Equal(t, m.Path("z.yaml"), loaded[2].Source)
}

func TestLocalReportStore_LoadReports_Errors(t *testing.T) {
	t.Parallel()

	rs := NewReportStore()

	_, err := rs.LoadReports(m.Path(filepath.Join(t.TempDir(), "missing")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read reports directory")

	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "broken.yaml"), "findings: [")

	_, err = rs.LoadReports(m.Path(dir))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode report")
}
