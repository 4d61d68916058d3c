// SPDX-License-Identifier: Apache-2.0

package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/scies/greenchem/internal/logger"
	"github.com/scies/greenchem/models"
)

// queryLogHeader is the column layout of the query log file. Files written
// before the purpose column existed lack 使用用途 and carry
// 用户名,CAS号,查询时间,查询结果 instead; the header row tells the two
// layouts apart.
var queryLogHeader = []string{"用户名", "CAS号", queryLogPurposeColumn, "查询时间", "查询结果"}

const queryLogPurposeColumn = "使用用途"

// queryLogCSV is the file-backed implementation of [QueryLogRepository].
// Rows are only ever appended; the file is opened with O_APPEND and a mutex
// serialises writers within the process, so concurrent appends cannot
// interleave or drop each other's rows.
type queryLogCSV struct {
	path   string
	mu     sync.Mutex
	logger *logger.Logger
}

// NewQueryLogCSV constructs a [QueryLogRepository] writing to the CSV file
// at path. The file itself is created lazily on first append; only the
// parent directory is created here.
func NewQueryLogCSV(path string, log *logger.Logger) (QueryLogRepository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("error creating query log directory: %w", err)
		}
	}

	log.Debug().Str("func", "NewQueryLogCSV").Str("path", path).Msg("creating query log")
	return &queryLogCSV{
		path:   path,
		logger: log,
	}, nil
}

// Append writes one entry to the end of the log file, creating the file with
// a header row if it does not exist yet.
func (l *queryLogCSV) Append(entry models.QueryLogEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("error opening query log: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("error inspecting query log: %w", err)
	}
	if info.Size() == 0 {
		if err := writer.Write(queryLogHeader); err != nil {
			return fmt.Errorf("error writing query log header: %w", err)
		}
	}

	row := []string{
		entry.Username,
		entry.CAS,
		entry.UsagePurpose,
		entry.Timestamp.Format(models.QueryLogTimeFormat),
		entry.ResultSummary,
	}
	if err := writer.Write(row); err != nil {
		return fmt.Errorf("error writing query log row: %w", err)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("error flushing query log: %w", err)
	}

	return nil
}

// LoadAll reads every entry from the log file in insertion order. A missing
// file yields an empty slice. When the header row lacks the 使用用途 column
// the file is in the legacy layout and every row loads with an empty usage
// purpose.
func (l *queryLogCSV) LoadAll() ([]models.QueryLogEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.QueryLogEntry{}, nil
		}
		return nil, fmt.Errorf("error opening query log: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	entries := []models.QueryLogEntry{}
	legacy := false
	for line := 1; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading query log row %d: %w", line, err)
		}

		// the header row declares the layout
		if line == 1 && len(row) > 0 && strings.TrimPrefix(row[0], "\uFEFF") == queryLogHeader[0] {
			legacy = !slices.Contains(row, queryLogPurposeColumn)
			continue
		}

		entry, err := entryFromRow(row, legacy)
		if err != nil {
			return nil, fmt.Errorf("query log row %d: %w", line, err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func entryFromRow(row []string, legacy bool) (models.QueryLogEntry, error) {
	if legacy {
		return legacyEntryFromRow(row)
	}

	if len(row) < 4 {
		return models.QueryLogEntry{}, ErrQueryLogMalformedRow
	}

	timestamp, err := time.ParseInLocation(models.QueryLogTimeFormat, row[3], time.Local)
	if err != nil {
		return models.QueryLogEntry{}, fmt.Errorf("%w: %w", ErrQueryLogMalformedRow, err)
	}

	entry := models.QueryLogEntry{
		Username:     row[0],
		CAS:          row[1],
		UsagePurpose: row[2],
		Timestamp:    timestamp,
	}
	if len(row) > 4 {
		entry.ResultSummary = row[4]
	}

	return entry, nil
}

// legacyEntryFromRow parses a 用户名,CAS号,查询时间,查询结果 row. The usage
// purpose did not exist yet and is synthesized as empty.
func legacyEntryFromRow(row []string) (models.QueryLogEntry, error) {
	if len(row) < 3 {
		return models.QueryLogEntry{}, ErrQueryLogMalformedRow
	}

	timestamp, err := time.ParseInLocation(models.QueryLogTimeFormat, row[2], time.Local)
	if err != nil {
		return models.QueryLogEntry{}, fmt.Errorf("%w: %w", ErrQueryLogMalformedRow, err)
	}

	entry := models.QueryLogEntry{
		Username:  row[0],
		CAS:       row[1],
		Timestamp: timestamp,
	}
	if len(row) > 3 {
		entry.ResultSummary = row[3]
	}

	return entry, nil
}
