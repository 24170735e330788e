/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// SheetLoader fetches both tables from published-spreadsheet CSV export
// URLs (the "export as csv" link of a shared sheet works as-is).
type SheetLoader struct {
	GoalsURL   string
	GroundsURL string

	// Client is used for both requests; a default with a 30s timeout is
	// used when nil.
	Client *http.Client
}

func (l *SheetLoader) LoadGoals(ctx context.Context) ([]GoalRecord, error) {
	body, err := l.fetch(ctx, l.GoalsURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	return DecodeGoalsCSV(body)
}

func (l *SheetLoader) LoadHuntingGrounds(ctx context.Context) ([]HuntingGroundRecord, error) {
	body, err := l.fetch(ctx, l.GroundsURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	return DecodeHuntingGroundsCSV(body)
}

func (l *SheetLoader) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	client := l.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}

	return resp.Body, nil
}
