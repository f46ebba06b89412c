package models

import (
	"errors"
	"io/fs"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestInputErrorNamesField(t *testing.T) {
	_, parseErr := strconv.ParseFloat("lots", 64)
	err := error(&InputError{Field: "avg_demand", Value: "lots", Err: parseErr})

	assert.Contains(t, err.Error(), "avg_demand")
	assert.Contains(t, err.Error(), `"lots"`)
	assert.ErrorIs(t, err, strconv.ErrSyntax)

	var ie *InputError
	assert.True(t, errors.As(err, &ie))
}

func TestIOErrorNamesPath(t *testing.T) {
	err := error(&IOError{Op: "write", Path: "/ro/AI_Report.txt", Err: fs.ErrPermission})

	assert.Contains(t, err.Error(), "I/O failure")
	assert.Contains(t, err.Error(), "/ro/AI_Report.txt")
	assert.ErrorIs(t, err, fs.ErrPermission)
}

func TestNewReportRunAssignsID(t *testing.T) {
	at := time.Date(2025, 1, 2, 3, 4, 0, 0, time.UTC)
	a := NewReportRun(CommunityProfile{Name: "A"}, ImpactMetrics{JobsCreated: 3}, at)
	b := NewReportRun(CommunityProfile{Name: "A"}, ImpactMetrics{JobsCreated: 3}, at)

	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, at, a.GeneratedAt)
	assert.Equal(t, 3, a.Metrics.JobsCreated)
}
