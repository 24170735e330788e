/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package game

import (
	"errors"
	"testing"

	"github.com/Seednode/huntinggrounds/internal/dataset"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()

	grounds := []dataset.HuntingGroundRecord{
		{HuntingGround: testGround, Difficulty: 4},
	}

	ds, err := dataset.New(testGoals()[:2], grounds)
	if err != nil {
		t.Fatalf("building dataset: %v", err)
	}

	return NewGame(ds)
}

func TestNewGameDefaults(t *testing.T) {
	g := newTestGame(t)

	if g.Players[0].Name != "Player 1" || g.Players[1].Name != "Player 2" {
		t.Errorf("default names = %q, %q", g.Players[0].Name, g.Players[1].Name)
	}
	if g.Players[0].Score != 0 || g.Players[1].Score != 0 {
		t.Errorf("default scores = %v, %v, want zero", g.Players[0].Score, g.Players[1].Score)
	}
	if g.Current != 0 {
		t.Errorf("current = %d, want player 1 to act", g.Current)
	}
	if g.Phase != PhaseAwaitingDifficulty {
		t.Errorf("phase = %v, want awaiting difficulty", g.Phase)
	}
	if g.Prompt != "" || g.Result != nil {
		t.Error("fresh game has a prompt or result")
	}
	if g.Difficulty != dataset.MinDifficulty || g.Season != dataset.DefaultSeason {
		t.Errorf("selectors = (%d, %q), want defaults", g.Difficulty, g.Season)
	}
}

func TestFullTurnAwardsPoints(t *testing.T) {
	g := newTestGame(t)

	if err := g.ChoosePrompt(4); err != nil {
		t.Fatalf("choose prompt: %v", err)
	}
	if g.Phase != PhasePromptShown {
		t.Fatalf("phase = %v, want prompt shown", g.Phase)
	}
	if g.Prompt != testGround {
		t.Fatalf("prompt = %q, want %q", g.Prompt, testGround)
	}

	result, err := g.SubmitAnswer("ilkay gundogan", "2020-2021")
	if err != nil {
		t.Fatalf("submit answer: %v", err)
	}
	if result.Verdict != VerdictBothCorrect {
		t.Fatalf("verdict = %v, want both correct", result.Verdict)
	}
	if g.Phase != PhaseTurnResolved {
		t.Errorf("phase = %v, want turn resolved", g.Phase)
	}
	if g.Players[0].Score != 4 {
		t.Errorf("player 1 score = %v, want 4", g.Players[0].Score)
	}
	if g.Players[1].Score != 0 {
		t.Errorf("player 2 score = %v, want 0", g.Players[1].Score)
	}
}

func TestHalfPoints(t *testing.T) {
	g := newTestGame(t)

	if err := g.ChoosePrompt(4); err != nil {
		t.Fatalf("choose prompt: %v", err)
	}

	result, err := g.SubmitAnswer("ilkay gundogan", "2019-2020")
	if err != nil {
		t.Fatalf("submit answer: %v", err)
	}
	if result.Verdict != VerdictHalfCorrect {
		t.Fatalf("verdict = %v, want half correct", result.Verdict)
	}
	if g.Players[0].Score != 2 {
		t.Errorf("player 1 score = %v, want 2", g.Players[0].Score)
	}
}

func TestAdvanceTurnSwitchesPlayerAndKeepsScores(t *testing.T) {
	g := newTestGame(t)

	if err := g.ChoosePrompt(4); err != nil {
		t.Fatalf("choose prompt: %v", err)
	}
	if _, err := g.SubmitAnswer("ilkay gundogan", "2020-2021"); err != nil {
		t.Fatalf("submit answer: %v", err)
	}

	if err := g.AdvanceTurn(); err != nil {
		t.Fatalf("advance turn: %v", err)
	}

	if g.Current != 1 {
		t.Errorf("current = %d, want player 2", g.Current)
	}
	if g.Prompt != "" || g.Result != nil {
		t.Error("prompt or result survived turn change")
	}
	if g.Phase != PhaseAwaitingDifficulty {
		t.Errorf("phase = %v, want awaiting difficulty", g.Phase)
	}
	if g.Difficulty != dataset.MinDifficulty || g.Season != dataset.DefaultSeason {
		t.Errorf("selectors = (%d, %q), want reset to defaults", g.Difficulty, g.Season)
	}
	if g.Players[0].Score != 4 {
		t.Errorf("player 1 score = %v, want 4 preserved across turns", g.Players[0].Score)
	}
}

func TestResetClearsEverything(t *testing.T) {
	g := newTestGame(t)

	if err := g.SetPlayerName(0, "Alice"); err != nil {
		t.Fatalf("set name: %v", err)
	}
	if err := g.ChoosePrompt(4); err != nil {
		t.Fatalf("choose prompt: %v", err)
	}
	if _, err := g.SubmitAnswer("ilkay gundogan", "2020-2021"); err != nil {
		t.Fatalf("submit answer: %v", err)
	}

	g.Reset()

	if g.Players[0].Name != "Player 1" || g.Players[0].Score != 0 {
		t.Errorf("player 1 = %+v, want defaults", g.Players[0])
	}
	if g.Current != 0 || g.Phase != PhaseAwaitingDifficulty {
		t.Errorf("state = (player %d, %v), want player 1 awaiting difficulty", g.Current, g.Phase)
	}

	// Reset is idempotent.
	before := *g
	g.Reset()
	if *g != before {
		t.Error("second reset changed state")
	}
}

func TestInvalidTransitions(t *testing.T) {
	g := newTestGame(t)

	if _, err := g.SubmitAnswer("anyone", "2020-2021"); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("submit before prompt: error = %v, want ErrInvalidTransition", err)
	}
	if err := g.AdvanceTurn(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("advance before resolve: error = %v, want ErrInvalidTransition", err)
	}

	if err := g.ChoosePrompt(4); err != nil {
		t.Fatalf("choose prompt: %v", err)
	}
	if err := g.ChoosePrompt(4); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("double choose: error = %v, want ErrInvalidTransition", err)
	}

	if _, err := g.SubmitAnswer("ilkay gundogan", "2020-2021"); err != nil {
		t.Fatalf("submit answer: %v", err)
	}
	if _, err := g.SubmitAnswer("ilkay gundogan", "2020-2021"); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("double submit: error = %v, want ErrInvalidTransition", err)
	}
}

func TestChoosePromptEmptyPoolLeavesStateUsable(t *testing.T) {
	g := newTestGame(t)

	if err := g.ChoosePrompt(9); !errors.Is(err, ErrEmptyPool) {
		t.Fatalf("error = %v, want ErrEmptyPool", err)
	}
	if g.Phase != PhaseAwaitingDifficulty {
		t.Errorf("phase = %v, want still awaiting difficulty", g.Phase)
	}

	if err := g.ChoosePrompt(4); err != nil {
		t.Errorf("retry after empty pool failed: %v", err)
	}
}

func TestSetPlayerName(t *testing.T) {
	g := newTestGame(t)

	if err := g.SetPlayerName(1, "Bob"); err != nil {
		t.Fatalf("set name: %v", err)
	}
	if g.Players[1].Name != "Bob" {
		t.Errorf("name = %q, want Bob", g.Players[1].Name)
	}

	// Blank input keeps the current name, like the original widgets.
	if err := g.SetPlayerName(1, "   "); err != nil {
		t.Fatalf("set blank name: %v", err)
	}
	if g.Players[1].Name != "Bob" {
		t.Errorf("name = %q after blank input, want Bob", g.Players[1].Name)
	}

	if err := g.SetPlayerName(2, "Carol"); err == nil {
		t.Error("expected error for invalid seat")
	}
}
