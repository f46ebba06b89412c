package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"energy-report/models"
)

const fileTimestamp = "20060102_1504"

// ReportFilename is AI_Report_<name, spaces as underscores>_<YYYYMMDD_HHMM>.txt.
func ReportFilename(community string, at time.Time) string {
	return artifactName("AI_Report", community, at, "txt")
}

// DashboardFilename names an exported dashboard image with the given extension.
func DashboardFilename(community string, at time.Time, ext string) string {
	return artifactName("AI_Dashboard", community, at, ext)
}

func artifactName(prefix, community string, at time.Time, ext string) string {
	return prefix + "_" + strings.ReplaceAll(community, " ", "_") + "_" + at.Format(fileTimestamp) + "." + ext
}

// FileStore writes run artifacts (report text, dashboard images) into a
// single output directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a FileStore rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// ErrUnsafeFilename is returned when a community name would place the
// artifact outside the output directory.
var ErrUnsafeFilename = errors.New("file name contains a path separator")

// WriteReport saves the report text and returns the path written.
func (s *FileStore) WriteReport(community string, at time.Time, text string) (string, error) {
	return s.writeFile(ReportFilename(community, at), []byte(text))
}

// WriteDashboard saves an exported dashboard and returns the path written.
func (s *FileStore) WriteDashboard(community string, at time.Time, ext string, data []byte) (string, error) {
	return s.writeFile(DashboardFilename(community, at, ext), data)
}

// writeFile creates or truncates name inside the store directory. Only the
// store directory itself is created; name must be a single path element.
// Failures come back as *models.IOError.
func (s *FileStore) writeFile(name string, data []byte) (string, error) {
	path := s.dir + string(os.PathSeparator) + name
	if strings.ContainsRune(name, '/') || strings.ContainsRune(name, os.PathSeparator) {
		return path, &models.IOError{Op: "create", Path: path, Err: ErrUnsafeFilename}
	}
	path = filepath.Join(s.dir, name)

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return path, &models.IOError{Op: "create directory", Path: s.dir, Err: err}
	}

	f, err := os.Create(path)
	if err != nil {
		return path, &models.IOError{Op: "create", Path: path, Err: err}
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return path, &models.IOError{Op: "write", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return path, &models.IOError{Op: "close", Path: path, Err: err}
	}
	return path, nil
}
