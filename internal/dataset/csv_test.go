/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package dataset

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const goalsCSV = `hunting_ground,scorer,season,date,minute,match_report_url
Arsenal @ Old Trafford,Thierry Henry,2003-2004,2004-03-28,50,en/matches/abc
Chelsea @ Anfield,Didier Drogba,2007-2008,2008-02-10,62,en/matches/def
`

const groundsCSV = `difficulty,hunting_ground
3,Arsenal @ Old Trafford
7,Chelsea @ Anfield
`

func TestDecodeGoalsCSV(t *testing.T) {
	goals, err := DecodeGoalsCSV(strings.NewReader(goalsCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(goals) != 2 {
		t.Fatalf("got %d rows, want 2", len(goals))
	}

	want := GoalRecord{
		HuntingGround:  "Arsenal @ Old Trafford",
		Scorer:         "Thierry Henry",
		Season:         "2003-2004",
		Date:           "2004-03-28",
		Minute:         "50",
		MatchReportURL: "en/matches/abc",
	}
	if goals[0] != want {
		t.Errorf("row 0 = %+v, want %+v", goals[0], want)
	}
}

func TestDecodeHuntingGroundsCSVColumnOrder(t *testing.T) {
	// Header columns are reversed relative to the goals file.
	grounds, err := DecodeHuntingGroundsCSV(strings.NewReader(groundsCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(grounds) != 2 {
		t.Fatalf("got %d rows, want 2", len(grounds))
	}
	if grounds[0].HuntingGround != "Arsenal @ Old Trafford" || grounds[0].Difficulty != 3 {
		t.Errorf("row 0 = %+v", grounds[0])
	}
}

func TestDecodeGoalsCSVMissingColumn(t *testing.T) {
	bad := "hunting_ground,season\nArsenal @ Old Trafford,2003-2004\n"
	if _, err := DecodeGoalsCSV(strings.NewReader(bad)); err == nil || !strings.Contains(err.Error(), "scorer") {
		t.Errorf("error = %v, want missing scorer column", err)
	}
}

func TestDecodeHuntingGroundsCSVBadDifficulty(t *testing.T) {
	bad := "hunting_ground,difficulty\nArsenal @ Old Trafford,hard\n"
	if _, err := DecodeHuntingGroundsCSV(strings.NewReader(bad)); err == nil {
		t.Error("expected error for non-numeric difficulty")
	}
}

func TestDecodeEmptyCSV(t *testing.T) {
	if _, err := DecodeGoalsCSV(strings.NewReader("")); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestCSVLoader(t *testing.T) {
	dir := t.TempDir()

	goalsPath := filepath.Join(dir, "goals.csv")
	groundsPath := filepath.Join(dir, "grounds.csv")
	if err := os.WriteFile(goalsPath, []byte(goalsCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(groundsPath, []byte(groundsCSV), 0o644); err != nil {
		t.Fatal(err)
	}

	loader := &CSVLoader{GoalsPath: goalsPath, GroundsPath: groundsPath}

	d, err := Load(context.Background(), loader)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.GoalCount() != 2 || d.GroundCount() != 2 {
		t.Errorf("counts = (%d, %d), want (2, 2)", d.GoalCount(), d.GroundCount())
	}
}

func TestCSVLoaderMissingFile(t *testing.T) {
	loader := &CSVLoader{
		GoalsPath:   filepath.Join(t.TempDir(), "nope.csv"),
		GroundsPath: filepath.Join(t.TempDir(), "nope.csv"),
	}
	if _, err := loader.LoadGoals(context.Background()); err == nil {
		t.Error("expected error for missing file")
	}
}
