package activity

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestMerge(t *testing.T) {
	items := []Item{
		{ID: "o1", Type: "order", Timestamp: "2026-08-28"},
		{ID: "i1", Type: "inventory", Timestamp: "2026-08-30"},
		{ID: "s1", Type: "supplier", Timestamp: ""},
		{ID: "sa1", Type: "sale", Timestamp: "2026-08-30 14:05"},
		{ID: "sa2", Type: "sale", Timestamp: "2026-08-29 09:00:00"},
	}

	got := merge(items, 3)

	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	// sa1 has a time-of-day on the newest date, so it outranks the
	// date-only inventory row.
	wantOrder := []string{"sa1", "i1", "sa2"}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Fatalf("position %d = %s, want %s (full: %v)", i, got[i].ID, id, got)
		}
	}
	for _, item := range got {
		if item.Timestamp == "" {
			t.Fatalf("empty timestamp survived the merge: %v", item)
		}
	}
}

func TestMergeLimitLargerThanInput(t *testing.T) {
	got := merge([]Item{{ID: "a", Timestamp: "2026-01-01"}}, 10)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
}

func TestRecentIsolatesSourceFailures(t *testing.T) {
	feed := &Feed{
		log: zerolog.Nop(),
		sources: []source{
			{name: "ok", fetch: func(context.Context, int) ([]Item, error) {
				return []Item{
					{ID: "a", Type: "order", Timestamp: "2026-08-30"},
					{ID: "b", Type: "order", Timestamp: "2026-08-29"},
				}, nil
			}},
			{name: "broken", fetch: func(context.Context, int) ([]Item, error) {
				return nil, errors.New("connection refused")
			}},
		},
	}

	got, err := feed.Recent(context.Background(), 5)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("order = %v", got)
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		input string
		zero  bool
	}{
		{input: "2026-08-30", zero: false},
		{input: "2026-08-30 14:05", zero: false},
		{input: "2026-08-30 14:05:06", zero: false},
		{input: "garbage", zero: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := parseTimestamp(tt.input)
			if got.IsZero() != tt.zero {
				t.Fatalf("parseTimestamp(%q).IsZero() = %v, want %v", tt.input, got.IsZero(), tt.zero)
			}
		})
	}
}
