package osemosys

import (
	"fmt"
	"io"
	"strconv"

	"res-builder/core/res"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the generated workbook.
const (
	SheetRegion     = "REGION"
	SheetTechnology = "TECHNOLOGY"
	SheetFuel       = "FUEL"
	SheetDemand     = "AccumulatedAnnualDemand"
)

// Workbook renders the sets and parameter rows of the built technology list
// into a model input workbook: one single-column sheet per SET plus the
// accumulated annual demand parameter sheet.
func Workbook(techs []*res.Technology) (*excelize.File, error) {
	sets := BuildSets(techs)
	demand := AccumulatedAnnualDemand(techs)

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetRegion); err != nil {
		return nil, fmt.Errorf("failed to create sheet %s: %w", SheetRegion, err)
	}

	if err := writeSetSheet(f, SheetRegion, sets.Regions); err != nil {
		return nil, err
	}
	for _, sheet := range []struct {
		name   string
		values []string
	}{
		{SheetTechnology, sets.Technologies},
		{SheetFuel, sets.Fuels},
	} {
		if _, err := f.NewSheet(sheet.name); err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", sheet.name, err)
		}
		if err := writeSetSheet(f, sheet.name, sheet.values); err != nil {
			return nil, err
		}
	}

	if err := writeDemandSheet(f, demand); err != nil {
		return nil, err
	}
	return f, nil
}

// WriteFile renders the workbook and saves it to the given path.
func WriteFile(techs []*res.Technology, path string) error {
	f, err := Workbook(techs)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

// Write renders the workbook to a stream, for publishing to object storage.
func Write(techs []*res.Technology, w io.Writer) error {
	f, err := Workbook(techs)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSetSheet(f *excelize.File, sheet string, values []string) error {
	if err := f.SetCellValue(sheet, "A1", "VALUE"); err != nil {
		return fmt.Errorf("failed to write sheet %s: %w", sheet, err)
	}
	for i, v := range values {
		cell := "A" + strconv.Itoa(i+2)
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("failed to write sheet %s: %w", sheet, err)
		}
	}
	return nil
}

func writeDemandSheet(f *excelize.File, rows []DemandRow) error {
	if _, err := f.NewSheet(SheetDemand); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", SheetDemand, err)
	}

	header := []interface{}{"REGION", "FUEL", DemandYear}
	if err := f.SetSheetRow(SheetDemand, "A1", &header); err != nil {
		return fmt.Errorf("failed to write sheet %s: %w", SheetDemand, err)
	}
	for i, r := range rows {
		row := []interface{}{r.Region, r.Label, r.EnergyPJ}
		cell := "A" + strconv.Itoa(i+2)
		if err := f.SetSheetRow(SheetDemand, cell, &row); err != nil {
			return fmt.Errorf("failed to write sheet %s: %w", SheetDemand, err)
		}
	}
	return nil
}
