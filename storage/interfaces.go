package storage

import "energy-report/models"

// RunWriter is the interface any run-record sink must satisfy.
type RunWriter interface {
	Write(run *models.ReportRun) error
	Close() error
}

// RunReader lists previously stored runs, newest first.
type RunReader interface {
	FetchRecent(limit int) ([]*models.ReportRun, error)
}
