// =============================================================================
// POS to XLSX Export - File Management Utilities
// =============================================================================
//
// This module handles the file-level housekeeping around an import run:
//
//   - Ensuring the output and archive directories exist
//   - Archiving the previous workbook before a run rewrites it
//   - Generating archive file names from a configurable format
//   - Writing a per-run summary log next to the workbook
//
// ARCHIVAL:
//   Import runs are destructive by design (clear and rewrite the target
//   sheet), so the previous workbook is copied into the archive directory
//   first. Archives accumulate; CleanOldArchives prunes them by age.
//
// =============================================================================

package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FileManager handles workbook archival and run logs.
type FileManager struct {
	// WorkbookPath is the output workbook this manager guards.
	WorkbookPath string

	// ArchiveDir is where previous workbook versions are copied.
	ArchiveDir string

	// ArchiveNameFormat names archived copies. See config.OutputConfig.
	ArchiveNameFormat string
}

// NewFileManager creates a new FileManager.
func NewFileManager(workbookPath, archiveDir, archiveNameFormat string) *FileManager {
	return &FileManager{
		WorkbookPath:      workbookPath,
		ArchiveDir:        archiveDir,
		ArchiveNameFormat: archiveNameFormat,
	}
}

// EnsureDirectories creates the workbook and archive directories if needed.
func (fm *FileManager) EnsureDirectories() error {
	dirs := []string{
		filepath.Dir(fm.WorkbookPath),
		fm.ArchiveDir,
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// ArchivePreviousWorkbook copies the current workbook into the archive
// directory, returning the archive path. A missing workbook (first run) is
// not an error and returns "".
func (fm *FileManager) ArchivePreviousWorkbook() (string, error) {
	if !FileExists(fm.WorkbookPath) {
		return "", nil
	}

	name := GenerateArchiveName(fm.ArchiveNameFormat, fm.WorkbookPath)
	dst := filepath.Join(fm.ArchiveDir, name)

	if err := copyFile(fm.WorkbookPath, dst); err != nil {
		return "", fmt.Errorf("failed to archive workbook: %w", err)
	}
	return dst, nil
}

// GenerateArchiveName expands the archive name format.
//
// PLACEHOLDERS:
//   - {name}      : base name of the workbook without extension
//   - {timestamp} : current time as YYYYMMDD_HHMMSS
//   - {uuid}      : a random UUID
func GenerateArchiveName(format, workbookPath string) string {
	base := strings.TrimSuffix(filepath.Base(workbookPath), filepath.Ext(workbookPath))
	replacements := map[string]string{
		"{name}":      base,
		"{timestamp}": time.Now().Format("20060102_150405"),
		"{uuid}":      uuid.New().String(),
	}

	result := format
	for placeholder, value := range replacements {
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}

// =============================================================================
// RUN SUMMARY LOG
// =============================================================================

// RunSummary describes one completed import run.
type RunSummary struct {
	// Command is the import command that ran ("import-products", ...).
	Command string

	// Sheets lists the sheets written with their data row counts.
	Sheets map[string]int

	// Fetched is the number of upstream records fetched.
	Fetched int

	// StartTime and Duration bracket the run.
	StartTime time.Time
	Duration  time.Duration

	// Err is the fetch error when the run ended header-only.
	Err error
}

// WriteRunSummary writes a plain-text summary next to the workbook and
// returns its path. Summary files are append-per-run, one file per day.
func (fm *FileManager) WriteRunSummary(summary RunSummary) (string, error) {
	logPath := filepath.Join(
		filepath.Dir(fm.WorkbookPath),
		fmt.Sprintf("import_summary_%s.log", summary.StartTime.Format("20060102")),
	)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to open summary log: %w", err)
	}
	defer f.Close()

	fmt.Fprintf(f, "=== %s @ %s ===\n", summary.Command, summary.StartTime.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(f, "Fetched records: %d\n", summary.Fetched)
	for sheet, rows := range summary.Sheets {
		fmt.Fprintf(f, "Sheet %q: %d data row(s)\n", sheet, rows)
	}
	fmt.Fprintf(f, "Elapsed: %s\n", summary.Duration)
	if summary.Err != nil {
		fmt.Fprintf(f, "RESULT: FAILED (header-only sheets): %v\n\n", summary.Err)
	} else {
		fmt.Fprintf(f, "RESULT: OK\n\n")
	}

	return logPath, nil
}

// =============================================================================
// HELPERS
// =============================================================================

// copyFile copies a file, preserving nothing but the bytes.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// FileExists reports whether the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// CleanOldArchives removes archived workbooks older than maxAge and returns
// the number removed.
func CleanOldArchives(archiveDir string, maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(archiveDir)
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(archiveDir, entry.Name())); err == nil {
				removed++
			}
		}
	}
	return removed, nil
}
