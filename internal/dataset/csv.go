/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// CSVLoader reads both tables from CSV files on disk. The files must carry
// a header row; column order does not matter.
type CSVLoader struct {
	GoalsPath   string
	GroundsPath string
}

func (l *CSVLoader) LoadGoals(_ context.Context) ([]GoalRecord, error) {
	f, err := os.Open(l.GoalsPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return DecodeGoalsCSV(f)
}

func (l *CSVLoader) LoadHuntingGrounds(_ context.Context) ([]HuntingGroundRecord, error) {
	f, err := os.Open(l.GroundsPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return DecodeHuntingGroundsCSV(f)
}

// DecodeGoalsCSV parses away-goal rows from r. Shared by the file and
// spreadsheet-export loaders.
func DecodeGoalsCSV(r io.Reader) ([]GoalRecord, error) {
	rows, header, err := readCSV(r)
	if err != nil {
		return nil, err
	}

	for _, col := range []string{"hunting_ground", "scorer", "season"} {
		if _, ok := header[col]; !ok {
			return nil, fmt.Errorf("goals csv missing %q column", col)
		}
	}

	goals := make([]GoalRecord, 0, len(rows))
	for _, row := range rows {
		goals = append(goals, GoalRecord{
			HuntingGround:  field(row, header, "hunting_ground"),
			Scorer:         field(row, header, "scorer"),
			Season:         field(row, header, "season"),
			Date:           field(row, header, "date"),
			Minute:         field(row, header, "minute"),
			MatchReportURL: field(row, header, "match_report_url"),
		})
	}

	return goals, nil
}

// DecodeHuntingGroundsCSV parses hunting ground rows from r.
func DecodeHuntingGroundsCSV(r io.Reader) ([]HuntingGroundRecord, error) {
	rows, header, err := readCSV(r)
	if err != nil {
		return nil, err
	}

	for _, col := range []string{"hunting_ground", "difficulty"} {
		if _, ok := header[col]; !ok {
			return nil, fmt.Errorf("hunting grounds csv missing %q column", col)
		}
	}

	grounds := make([]HuntingGroundRecord, 0, len(rows))
	for _, row := range rows {
		difficulty, err := strconv.Atoi(field(row, header, "difficulty"))
		if err != nil {
			return nil, fmt.Errorf("bad difficulty for %q: %w", field(row, header, "hunting_ground"), err)
		}
		grounds = append(grounds, HuntingGroundRecord{
			HuntingGround: field(row, header, "hunting_ground"),
			Difficulty:    difficulty,
		})
	}

	return grounds, nil
}

func readCSV(r io.Reader) ([][]string, map[string]int, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 1 {
		return nil, nil, fmt.Errorf("empty csv")
	}

	header := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}

	return records[1:], header, nil
}

func field(row []string, header map[string]int, name string) string {
	i, ok := header[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
