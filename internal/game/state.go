/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

// Package game implements the turn-based trivia core: prompt selection,
// fuzzy answer evaluation, and the per-session state machine. It has no
// knowledge of the transport; the websocket hub owns a Game and calls the
// four transitions.
package game

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/Seednode/huntinggrounds/internal/dataset"
)

// Phase gates which inputs are live during a turn.
type Phase int

const (
	PhaseAwaitingDifficulty Phase = iota
	PhasePromptShown
	PhaseAwaitingEvaluation
	PhaseTurnResolved
)

func (p Phase) String() string {
	switch p {
	case PhasePromptShown:
		return "prompt_shown"
	case PhaseAwaitingEvaluation:
		return "awaiting_evaluation"
	case PhaseTurnResolved:
		return "turn_resolved"
	default:
		return "awaiting_difficulty"
	}
}

// Player is one of the two seats sharing the session.
type Player struct {
	Name  string
	Score float64
}

// Game is the single mutable value behind one session. It is not safe for
// concurrent use; the owning hub serializes access.
type Game struct {
	ds  *dataset.Dataset
	rng *rand.Rand

	Players [2]Player
	Current int
	Phase   Phase

	// Prompt is the active hunting ground; empty before selection.
	Prompt string
	// Difficulty and Season mirror the two selector widgets so the
	// client can be redrawn entirely from server state.
	Difficulty int
	Season     string

	Result *Result
}

// NewGame builds a fresh two-player game over the shared dataset.
func NewGame(ds *dataset.Dataset) *Game {
	g := &Game{
		ds:  ds,
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	g.Reset()

	return g
}

// Reset returns everything to defaults with player 1 to act. Calling it
// repeatedly is harmless.
func (g *Game) Reset() {
	g.Players = [2]Player{{Name: "Player 1"}, {Name: "Player 2"}}
	g.Current = 0
	g.clearTurn()
}

func (g *Game) clearTurn() {
	g.Phase = PhaseAwaitingDifficulty
	g.Prompt = ""
	g.Difficulty = dataset.MinDifficulty
	g.Season = dataset.DefaultSeason
	g.Result = nil
}

// SetPlayerName renames a seat. Allowed in any phase; blank names keep
// the previous value, like the original sidebar inputs.
func (g *Game) SetPlayerName(seat int, name string) error {
	if seat < 0 || seat > 1 {
		return fmt.Errorf("invalid seat %d", seat)
	}
	if name = strings.TrimSpace(name); name != "" {
		g.Players[seat].Name = name
	}

	return nil
}

// ChoosePrompt draws a random hunting ground of the given difficulty and
// opens the answer inputs.
func (g *Game) ChoosePrompt(difficulty int) error {
	if g.Phase != PhaseAwaitingDifficulty {
		return fmt.Errorf("%w: choose_prompt in %s", ErrInvalidTransition, g.Phase)
	}

	prompt, err := SelectPrompt(g.rng, difficulty, g.ds.GroundRecords())
	if err != nil {
		return err
	}

	g.Prompt = prompt
	g.Difficulty = difficulty
	g.Phase = PhasePromptShown

	return nil
}

// SubmitAnswer evaluates the guess, credits the current player, and
// unlocks turn progression. Evaluation failures leave the answer inputs
// open so the fault does not wedge the session.
func (g *Game) SubmitAnswer(name, season string) (*Result, error) {
	if g.Phase != PhasePromptShown {
		return nil, fmt.Errorf("%w: submit_answer in %s", ErrInvalidTransition, g.Phase)
	}

	g.Phase = PhaseAwaitingEvaluation

	result, err := Evaluate(name, season, g.Prompt, g.Difficulty, g.ds.GoalsFor(g.Prompt))
	if err != nil {
		g.Phase = PhasePromptShown
		return nil, err
	}

	g.Season = season
	g.Players[g.Current].Score += result.Points
	g.Result = &result
	g.Phase = PhaseTurnResolved

	return &result, nil
}

// AdvanceTurn hands the session to the other player. Names and scores
// persist; the prompt, result, and both selectors reset.
func (g *Game) AdvanceTurn() error {
	if g.Phase != PhaseTurnResolved {
		return fmt.Errorf("%w: advance_turn in %s", ErrInvalidTransition, g.Phase)
	}

	g.Current = 1 - g.Current
	g.clearTurn()

	return nil
}
