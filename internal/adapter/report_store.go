package adapter

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/casereach/internal/model"
)

const reportExt = ".yaml"

// ReportStore persists and retrieves analysis reports.
type ReportStore interface {
	SaveReports(path m.Path, reports []m.Report) error
	LoadReports(path m.Path) ([]m.Report, error)
}

// LocalReportStore writes one YAML file per report into a directory.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

// SaveReports writes every report to path, creating it when missing. A
// report replaces the earlier report for the same source file.
func (rs *LocalReportStore) SaveReports(path m.Path, reports []m.Report) error {
	if err := os.MkdirAll(string(path), 0o750); err != nil {
		return fmt.Errorf("create reports directory %s: %w", path, err)
	}

	for _, report := range reports {
		data, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("encode report for %s: %w", report.Source, err)
		}

		file := filepath.Join(string(path), rs.computeReportHash(report.Source)+reportExt)
		if err := os.WriteFile(file, data, 0o600); err != nil {
			return fmt.Errorf("write report %s: %w", file, err)
		}
	}

	return nil
}

// LoadReports reads every report in path, ordered by source file.
func (rs *LocalReportStore) LoadReports(path m.Path) ([]m.Report, error) {
	entries, err := os.ReadDir(string(path))
	if err != nil {
		return nil, fmt.Errorf("read reports directory %s: %w", path, err)
	}

	var reports []m.Report

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), reportExt) {
			continue
		}

		file := filepath.Join(string(path), entry.Name())

		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read report %s: %w", file, err)
		}

		var report m.Report
		if err := yaml.Unmarshal(data, &report); err != nil {
			return nil, fmt.Errorf("decode report %s: %w", file, err)
		}

		reports = append(reports, report)
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Source < reports[j].Source
	})

	return reports, nil
}

// computeReportHash names the report file after its source path.
func (rs *LocalReportStore) computeReportHash(source m.Path) string {
	sum := sha256.Sum256([]byte(source))

	return hex.EncodeToString(sum[:8])
}
