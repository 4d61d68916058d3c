// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/scies/greenchem/internal/logger"
	"github.com/scies/greenchem/internal/store"
	"github.com/scies/greenchem/models"
)

// auditService is the concrete implementation of AuditService. It reads the
// query log through the repository and layers date filtering, aggregation,
// and CSV export on top. The log itself is only ever written by the lookup
// path; this service never mutates it.
type auditService struct {
	queryLog store.QueryLogRepository
	logger   *logger.Logger
}

func NewAuditService(queryLog store.QueryLogRepository, logger *logger.Logger) AuditService {
	return &auditService{
		queryLog: queryLog,
		logger:   logger,
	}
}

// List returns log entries within the date range in insertion order.
// Start and end are dates; both bounds are inclusive, and a zero value
// leaves that bound open.
func (s *auditService) List(ctx context.Context, start, end time.Time) ([]models.QueryLogEntry, error) {
	entries, err := s.queryLog.LoadAll()
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("query log read failed")
		return nil, fmt.Errorf("query log read failed: %w", err)
	}

	return FilterByDateRange(entries, start, end), nil
}

// ExportCSV writes the filtered entries to w in the query log file layout,
// header included.
func (s *auditService) ExportCSV(ctx context.Context, w io.Writer, start, end time.Time) error {
	entries, err := s.List(ctx, start, end)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"用户名", "CAS号", "使用用途", "查询时间", "查询结果"}); err != nil {
		return fmt.Errorf("query log export failed: %w", err)
	}
	for _, entry := range entries {
		row := []string{
			entry.Username,
			entry.CAS,
			entry.UsagePurpose,
			entry.Timestamp.Format(models.QueryLogTimeFormat),
			entry.ResultSummary,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("query log export failed: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("query log export failed: %w", err)
	}

	return nil
}

// Stats aggregates the filtered entries by date and by user.
func (s *auditService) Stats(ctx context.Context, start, end time.Time) (models.QueryLogStats, error) {
	entries, err := s.List(ctx, start, end)
	if err != nil {
		return models.QueryLogStats{}, err
	}

	return AggregateEntries(entries), nil
}

// FilterByDateRange returns the entries whose timestamps fall on dates
// between start and end, inclusive. Zero bounds are open. Order is
// preserved. Only the calendar date of each timestamp is compared, in the
// timestamp's own location, so bounds and entries may carry different
// time zones.
func FilterByDateRange(entries []models.QueryLogEntry, start, end time.Time) []models.QueryLogEntry {
	var startDate, endDate string
	if !start.IsZero() {
		startDate = start.Format(time.DateOnly)
	}
	if !end.IsZero() {
		endDate = end.Format(time.DateOnly)
	}

	filtered := make([]models.QueryLogEntry, 0, len(entries))
	for _, entry := range entries {
		date := entry.Timestamp.Format(time.DateOnly)
		if startDate != "" && date < startDate {
			continue
		}
		if endDate != "" && date > endDate {
			continue
		}
		filtered = append(filtered, entry)
	}

	return filtered
}

// AggregateEntries counts entries per calendar date and per username.
func AggregateEntries(entries []models.QueryLogEntry) models.QueryLogStats {
	stats := models.QueryLogStats{
		ByDate: make(map[string]int),
		ByUser: make(map[string]int),
		Total:  len(entries),
	}
	for _, entry := range entries {
		stats.ByDate[entry.Timestamp.Format(time.DateOnly)]++
		stats.ByUser[entry.Username]++
	}

	return stats
}
