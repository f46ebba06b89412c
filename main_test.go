package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energy-report/catalog"
	"energy-report/input"
	"energy-report/models"
	"energy-report/storage"
	"energy-report/utils"
)

func newBufferedLogger() (*utils.Logger, *bytes.Buffer) {
	var errOut bytes.Buffer
	return utils.NewLoggerWithWriters(utils.LevelInfo, &bytes.Buffer{}, &errOut), &errOut
}

func TestFailNamesFieldOrPath(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "input error",
			err:  &models.InputError{Field: "avg_ghi", Value: "sunny", Err: errors.New("invalid syntax")},
			want: []string{`"avg_ghi"`, `"sunny"`, "is not a number"},
		},
		{
			name: "wrapped io error",
			err: fmt.Errorf("saving report: %w",
				&models.IOError{Op: "create", Path: "/reports/AI_Report_X.txt", Err: os.ErrPermission}),
			want: []string{"I/O failure", "/reports/AI_Report_X.txt", "create", "permission denied"},
		},
		{
			name: "other error",
			err:  errors.New("boom"),
			want: []string{"Report generation failed", "boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, errOut := newBufferedLogger()

			assert.Equal(t, 1, fail(logger, tt.err))
			for _, w := range tt.want {
				assert.Contains(t, errOut.String(), w)
			}
		})
	}
}

func TestFailReportsCollectionInputError(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	answers := strings.Repeat("\n", 4) + "lots\n"
	_, err = input.NewCollector(strings.NewReader(answers), &bytes.Buffer{}, cat, utils.Discard()).Collect()
	require.Error(t, err)

	logger, errOut := newBufferedLogger()
	assert.Equal(t, 1, fail(logger, err))
	assert.Contains(t, errOut.String(), `"avg_demand"`)
	assert.Contains(t, errOut.String(), `"lots"`)
}

func TestFailReportsReportWriteError(t *testing.T) {
	store := storage.NewFileStore(filepath.Join(t.TempDir(), "out"))
	_, err := store.WriteReport("Valley/North", time.Date(2025, 11, 4, 7, 5, 0, 0, time.UTC), "text")
	require.Error(t, err)

	logger, errOut := newBufferedLogger()
	assert.Equal(t, 1, fail(logger, err))
	assert.Contains(t, errOut.String(), "AI_Report_Valley/North_20251104_0705.txt")
}
