/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package main

import (
	"testing"

	"github.com/Seednode/huntinggrounds/internal/dataset"
)

func testData(t *testing.T) *dataset.Dataset {
	t.Helper()

	goals := []dataset.GoalRecord{
		{HuntingGround: "Manchester City @ Villa Park", Scorer: "Ilkay Gundogan", Season: "2020-2021"},
	}
	grounds := []dataset.HuntingGroundRecord{
		{HuntingGround: "Manchester City @ Villa Park", Difficulty: 4},
	}

	data, err := dataset.New(goals, grounds)
	if err != nil {
		t.Fatalf("building dataset: %v", err)
	}

	return data
}

func drain(c *Client) []any {
	var msgs []any
	for {
		select {
		case msg := <-c.send:
			msgs = append(msgs, msg)
		default:
			return msgs
		}
	}
}

func TestHubPlaysFullTurn(t *testing.T) {
	cfg := &Config{}
	m := newMetrics()
	hub := newHub("testgame", testData(t))

	c := &Client{send: make(chan any, 8)}
	hub.clients[c] = true

	hub.handleAction(cfg, m, actionRequest{client: c, msg: ClientMessage{Type: "set_name", Seat: 0, Name: "Alice"}})
	hub.handleAction(cfg, m, actionRequest{client: c, msg: ClientMessage{Type: "choose_prompt", Difficulty: 4}})
	hub.handleAction(cfg, m, actionRequest{client: c, msg: ClientMessage{Type: "submit_answer", Scorer: "ilkay gundogan", Season: "2020-2021"}})

	var last GameStateMessage
	found := false
	for _, msg := range drain(c) {
		if state, ok := msg.(GameStateMessage); ok {
			last = state
			found = true
		}
	}
	if !found {
		t.Fatal("no game_state broadcast received")
	}

	if last.Players[0].Name != "Alice" {
		t.Errorf("player name = %q, want Alice", last.Players[0].Name)
	}
	if last.Players[0].Score != 4 {
		t.Errorf("score = %v, want 4", last.Players[0].Score)
	}
	if last.Phase != "turn_resolved" {
		t.Errorf("phase = %q, want turn_resolved", last.Phase)
	}
	if last.Result == nil || last.Result.Verdict != "both correct" {
		t.Errorf("result = %+v, want both correct", last.Result)
	}
}

func TestHubRejectsOutOfTurnAction(t *testing.T) {
	cfg := &Config{}
	m := newMetrics()
	hub := newHub("testgame", testData(t))

	c := &Client{send: make(chan any, 8)}
	hub.clients[c] = true

	hub.handleAction(cfg, m, actionRequest{client: c, msg: ClientMessage{Type: "submit_answer", Scorer: "anyone", Season: "2020-2021"}})

	var sawError bool
	for _, msg := range drain(c) {
		if _, ok := msg.(ErrorMessage); ok {
			sawError = true
		}
	}
	if !sawError {
		t.Error("expected an error message for out-of-turn submit")
	}
}

func TestHubIgnoresUnknownMessageType(t *testing.T) {
	cfg := &Config{}
	m := newMetrics()
	hub := newHub("testgame", testData(t))

	c := &Client{send: make(chan any, 8)}
	hub.clients[c] = true

	hub.handleAction(cfg, m, actionRequest{client: c, msg: ClientMessage{Type: "bogus"}})

	if msgs := drain(c); len(msgs) != 0 {
		t.Errorf("unknown type produced %d messages, want none", len(msgs))
	}
}

func TestNewGameIDShape(t *testing.T) {
	gm := newGameManager(testData(t), 0)

	seen := make(map[string]bool)
	for range 50 {
		id := gm.newGameID()
		if len(id) != 8 {
			t.Fatalf("game id %q has length %d, want 8", id, len(id))
		}
		if seen[id] {
			t.Fatalf("duplicate game id %q", id)
		}
		seen[id] = true
	}
}
