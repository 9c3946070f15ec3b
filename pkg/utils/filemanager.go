// =============================================================================
// Voyage Data Collector - File Manager Utility
// =============================================================================
//
// This module provides file management utilities for the collector:
//   - Directory bootstrap for output/archive/log locations
//   - Output file naming from a configurable pattern
//   - Copy-to-archive of exported files
//
// NAMING:
//   Saved records are named from a pattern with placeholders:
//     {voyage}    - sanitized voyage number ("unknown" when empty)
//     {timestamp} - collection timestamp (YYYYMMDD_HHMMSS)
//     {uuid}      - a random UUID
//
//   Timestamps come from an injected Clock so tests produce deterministic
//   names.
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

// =============================================================================
// CLOCK
// =============================================================================

// Clock supplies the current time. The real implementation reads the wall
// clock; tests substitute a fixed one.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock struct {
	T time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time { return c.T }

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureDirectories creates every given directory if it does not exist.
func EnsureDirectories(dirs ...string) error {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// =============================================================================
// FILE NAMING
// =============================================================================

// GenerateOutputFileName expands the naming pattern for one saved record.
func GenerateOutputFileName(pattern, voyageNumber string, clock Clock) string {
	if clock == nil {
		clock = SystemClock{}
	}
	voyage := sanitizeComponent(voyageNumber)
	if voyage == "" {
		voyage = "unknown"
	}

	name := pattern
	name = strings.ReplaceAll(name, "{voyage}", voyage)
	name = strings.ReplaceAll(name, "{timestamp}", clock.Now().Format("20060102_150405"))
	name = strings.ReplaceAll(name, "{uuid}", uuid.New().String())
	return name
}

// sanitizeComponent strips characters that are unsafe in file names.
func sanitizeComponent(s string) string {
	var b strings.Builder
	for _, c := range strings.TrimSpace(s) {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			b.WriteRune(c)
		case c == '-' || c == '_' || c == '.':
			b.WriteRune(c)
		case c == ' ':
			b.WriteRune('-')
		}
	}
	return b.String()
}

// =============================================================================
// FILE OPERATIONS
// =============================================================================

// FileExists reports whether path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ArchiveFile copies an exported file into the archive directory, keeping
// the base name. The original stays in place.
func ArchiveFile(path, archiveDir string) (string, error) {
	if err := EnsureDirectories(archiveDir); err != nil {
		return "", err
	}
	dst := filepath.Join(archiveDir, filepath.Base(path))
	if err := copyFile(path, dst); err != nil {
		return "", fmt.Errorf("failed to archive %s: %w", path, err)
	}
	return dst, nil
}

// copyFile copies src to dst, truncating dst if it exists.
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
	return out.Close()
}
