// SPDX-License-Identifier: Apache-2.0

package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scies/greenchem/internal/logger"
	"github.com/scies/greenchem/models"
)

// Dataset column headers, matching the published substance list.
const (
	datasetColCAS     = "CAS号"
	datasetColName    = "中文名称"
	datasetColTier    = "绿色分级"
	datasetColLimit   = "涂料现行标准限量要求"
	datasetColControl = "我国新污染物相关管理要求"
)

// chemicalDataset is the in-memory implementation of [ChemicalDataset].
// The CSV file is read once at startup; after construction the map is
// read-only and safe for concurrent lookups.
type chemicalDataset struct {
	byCAS  map[string]models.ChemicalRecord
	logger *logger.Logger
}

// NewChemicalDataset loads the substance dataset from the CSV file at path.
//
// The header row must contain all five required columns; extra columns are
// ignored. Cell values are whitespace-trimmed, rows without a CAS number are
// skipped, and when two rows share a CAS number the first one wins and the
// duplicate is logged.
func NewChemicalDataset(path string, log *logger.Logger) (ChemicalDataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening dataset file: %w", err)
	}
	defer f.Close()

	byCAS, err := readDataset(f, log)
	if err != nil {
		return nil, err
	}

	log.Info().Str("func", "NewChemicalDataset").Int("records", len(byCAS)).Msg("dataset loaded")

	return &chemicalDataset{
		byCAS:  byCAS,
		logger: log,
	}, nil
}

// FindByCAS returns the record whose CAS number exactly matches the trimmed
// input. No partial or fuzzy matching is performed.
func (d *chemicalDataset) FindByCAS(cas string) (models.ChemicalRecord, bool) {
	record, ok := d.byCAS[strings.TrimSpace(cas)]
	return record, ok
}

// Size returns the number of distinct CAS numbers loaded.
func (d *chemicalDataset) Size() int {
	return len(d.byCAS)
}

func readDataset(r io.Reader, log *logger.Logger) (map[string]models.ChemicalRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading dataset header: %w", err)
	}

	columns, err := datasetColumnIndex(header)
	if err != nil {
		return nil, err
	}

	byCAS := make(map[string]models.ChemicalRecord)
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading dataset row %d: %w", line, err)
		}

		record := recordFromRow(row, columns)
		if record.CAS == "" {
			continue
		}

		if _, exists := byCAS[record.CAS]; exists {
			log.Warn().Str("func", "readDataset").Str("cas", record.CAS).Int("line", line).Msg("duplicate CAS number, keeping first occurrence")
			continue
		}
		byCAS[record.CAS] = record
	}

	return byCAS, nil
}

// datasetColumnIndex maps each required column name to its position in the
// header, tolerating a UTF-8 BOM on the first cell and surrounding
// whitespace on all cells.
func datasetColumnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\uFEFF")
		}
		index[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, required := range []string{datasetColCAS, datasetColName, datasetColTier, datasetColLimit, datasetColControl} {
		if _, ok := index[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrDatasetInvalidHeader, strings.Join(missing, ", "))
	}

	return index, nil
}

func recordFromRow(row []string, columns map[string]int) models.ChemicalRecord {
	cell := func(column string) string {
		i := columns[column]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	rawTier := cell(datasetColTier)
	return models.ChemicalRecord{
		CAS:                cell(datasetColCAS),
		Name:               cell(datasetColName),
		Tier:               models.ParseHazardTier(rawTier),
		RawTier:            rawTier,
		LimitRequirement:   cell(datasetColLimit),
		ControlRequirement: cell(datasetColControl),
	}
}
