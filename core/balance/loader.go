package balance

import (
	"context"
	"fmt"
	"io"
	"strings"

	"res-builder/core/storage"
	"res-builder/core/utils"

	"github.com/minio/minio-go/v7"
	"github.com/xuri/excelize/v2"
)

// unitLabel replaces the blank first-column label of the units row.
const unitLabel = "Unit"

// Load reads and normalizes a workbook from the local filesystem.
func Load(path string, headerRow int) (Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	ds, err := parseWorkbook(f, headerRow)
	if err != nil {
		return nil, fmt.Errorf("failed to parse workbook %s: %w", path, err)
	}
	return ds, nil
}

// LoadReader reads and normalizes a workbook from a stream.
func LoadReader(r io.Reader, headerRow int) (Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook stream: %w", err)
	}
	defer f.Close()

	return parseWorkbook(f, headerRow)
}

// parseWorkbook converts every sheet into a normalized Table.
func parseWorkbook(f *excelize.File, headerRow int) (Dataset, error) {
	if headerRow < 1 {
		headerRow = 1
	}

	ds := make(Dataset)
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
		}
		if len(rows) < headerRow {
			// Sheet has no header row; nothing to normalize.
			continue
		}

		header := rows[headerRow-1]
		if len(header) == 0 {
			// Blank header row: a cover sheet or stray notes, not a table.
			continue
		}
		var columns []string
		for _, c := range header[1:] {
			columns = append(columns, strings.TrimSpace(c))
		}

		table := Table{Columns: columns}
		for _, raw := range rows[headerRow:] {
			label := unitLabel
			if len(raw) > 0 {
				if l := strings.TrimSpace(raw[0]); l != "" {
					label = l
				}
			}

			cells := make([]float64, len(columns))
			for i := range columns {
				// Column i lives at sheet index i+1 (first column is the label).
				if i+1 < len(raw) {
					cells[i] = utils.ToFloat(raw[i+1])
				}
			}
			table.Rows = append(table.Rows, Row{Label: label, Cells: cells})
		}
		ds[sheet] = table
	}
	return ds, nil
}

// Source abstracts where the two input workbooks come from.
type Source interface {
	// Datasets returns the indicator and balance datasets, in that order.
	Datasets(ctx context.Context) (indicator Dataset, balance Dataset, err error)
}

// PathSource loads both workbooks from the local filesystem.
type PathSource struct {
	Config Config
}

// Datasets implements Source.
func (s PathSource) Datasets(ctx context.Context) (Dataset, Dataset, error) {
	indicator, err := Load(s.Config.IndicatorPath, s.Config.HeaderRow)
	if err != nil {
		return nil, nil, err
	}
	bal, err := Load(s.Config.BalancePath, s.Config.HeaderRow)
	if err != nil {
		return nil, nil, err
	}
	return indicator, bal, nil
}

// ObjectSource loads both workbooks from object storage.
type ObjectSource struct {
	Client storage.Client
	Config Config
}

// Datasets implements Source.
func (s ObjectSource) Datasets(ctx context.Context) (Dataset, Dataset, error) {
	indicator, err := s.load(ctx, s.Config.IndicatorPath)
	if err != nil {
		return nil, nil, err
	}
	bal, err := s.load(ctx, s.Config.BalancePath)
	if err != nil {
		return nil, nil, err
	}
	return indicator, bal, nil
}

func (s ObjectSource) load(ctx context.Context, objectName string) (Dataset, error) {
	rc, err := s.Client.GetObject(ctx, s.Config.Bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch workbook %s: %w", objectName, err)
	}
	defer rc.Close()

	ds, err := LoadReader(rc, s.Config.HeaderRow)
	if err != nil {
		return nil, fmt.Errorf("failed to parse workbook %s: %w", objectName, err)
	}
	return ds, nil
}
