package standingsservice

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const standingsSheet = "Standings"

var standingsHeader = []string{
	"Rank", "Team", "Division", "Matches", "Wins", "Losses", "Ties",
	"Points", "Runs For", "Runs Against", "+/-",
}

// BuildStandingsWorkbook writes the standings to a single-sheet XLSX
// workbook: a header row followed by one row per team in rank order.
func BuildStandingsWorkbook(view StandingsView) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), standingsSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(standingsHeader))
	for i, h := range standingsHeader {
		header[i] = h
	}
	if err := setRow(f, 1, header); err != nil {
		return nil, err
	}

	for i, row := range view.Rows {
		division := ""
		if row.Division != nil {
			division = *row.Division
		}
		cells := []interface{}{
			row.Rank, row.TeamName, division, row.MatchesPlayed,
			row.GameWins, row.GameLosses, row.GameTies, row.MatchPoints,
			row.RunsScored, row.RunsAllowed, row.PlusMinus,
		}
		if err := setRow(f, i+2, cells); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, row int, cells []interface{}) error {
	axis, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(standingsSheet, axis, &cells); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}
