// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/scies/greenchem/internal/logger"
	"github.com/scies/greenchem/internal/store"
	"github.com/scies/greenchem/models"
)

// lookupService is the concrete implementation of LookupService. Every
// lookup attempt, successful or not, is appended to the query log before the
// result is returned. A failed append does not fail the lookup itself; it is
// reported at error level so a missing log record shows up in monitoring.
type lookupService struct {
	// dataset is nil when the dataset file failed to load at startup.
	dataset  store.ChemicalDataset
	queryLog store.QueryLogRepository

	// now is the clock used for audit timestamps.
	now func() time.Time

	logger *logger.Logger
}

func NewLookupService(dataset store.ChemicalDataset, queryLog store.QueryLogRepository, logger *logger.Logger) LookupService {
	return &lookupService{
		dataset:  dataset,
		queryLog: queryLog,
		now:      time.Now,
		logger:   logger,
	}
}

// Search resolves a CAS number against the dataset. The input is
// whitespace-trimmed and matched exactly; no partial or fuzzy matching.
// A usage purpose must be declared with every lookup.
//
// Returns:
//   - ErrInvalidDataProvided if the trimmed CAS number or usage purpose is empty.
//   - ErrSearchUnavailable if the dataset is not loaded.
func (s *lookupService) Search(ctx context.Context, username string, request models.SearchRequest) (models.ChemicalRecord, bool, error) {
	log := logger.FromContext(ctx)

	cas := strings.TrimSpace(request.CASNumber)
	purpose := strings.TrimSpace(request.UsagePurpose)
	if cas == "" || purpose == "" {
		return models.ChemicalRecord{}, false, ErrInvalidDataProvided
	}

	if s.dataset == nil {
		log.Error().Str("cas", cas).Msg("search requested but dataset is not loaded")
		return models.ChemicalRecord{}, false, ErrSearchUnavailable
	}

	record, found := s.dataset.FindByCAS(cas)

	entry := models.QueryLogEntry{
		Username:      username,
		CAS:           cas,
		UsagePurpose:  purpose,
		Timestamp:     s.now(),
		ResultSummary: resultSummary(record, found),
	}
	if err := s.queryLog.Append(entry); err != nil {
		// The user still gets their result; the missing record is the fault.
		log.Err(err).Str("cas", cas).Str("username", username).Msg("query log append failed")
	}

	return record, found, nil
}

// resultSummary renders the one-line result recorded in the query log:
// "<名称> - 毒性分级: <级>" for a hit, 未找到结果 for a miss.
func resultSummary(record models.ChemicalRecord, found bool) string {
	if !found {
		return models.NotFoundResultSummary
	}

	tier := record.RawTier
	if tier == "" {
		tier = record.Tier.String()
	}
	return fmt.Sprintf("%s - 毒性分级: %s", record.Name, tier)
}
