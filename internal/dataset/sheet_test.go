/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package dataset

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSheetLoader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		switch r.URL.Path {
		case "/goals":
			_, _ = w.Write([]byte(goalsCSV))
		case "/grounds":
			_, _ = w.Write([]byte(groundsCSV))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	loader := &SheetLoader{
		GoalsURL:   srv.URL + "/goals",
		GroundsURL: srv.URL + "/grounds",
		Client:     srv.Client(),
	}

	d, err := Load(context.Background(), loader)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.GoalCount() != 2 || d.GroundCount() != 2 {
		t.Errorf("counts = (%d, %d), want (2, 2)", d.GoalCount(), d.GroundCount())
	}
}

func TestSheetLoaderBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	loader := &SheetLoader{
		GoalsURL:   srv.URL + "/goals",
		GroundsURL: srv.URL + "/grounds",
		Client:     srv.Client(),
	}

	if _, err := loader.LoadGoals(context.Background()); err == nil {
		t.Error("expected error for non-200 response")
	}
}
