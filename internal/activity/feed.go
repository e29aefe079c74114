// Package activity builds the dashboard's recent-activity feed by merging
// the freshest rows from four tables. Each source is pre-limited before the
// merge, so the result approximates rather than guarantees a global top-N
// when one table dominates recency.
package activity

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"opsdesk/internal/db"
	"opsdesk/internal/metrics"
)

// Item is one normalized entry of the activity feed.
type Item struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Timestamp string `json:"timestamp"`
}

type source struct {
	name  string
	fetch func(ctx context.Context, limit int) ([]Item, error)
}

// Feed aggregates recent rows across the order, inventory, supplier, and
// sale tables.
type Feed struct {
	log     zerolog.Logger
	sources []source
}

// NewFeed builds a Feed reading from pool.
func NewFeed(pool *pgxpool.Pool, log zerolog.Logger) *Feed {
	return &Feed{
		log: log,
		sources: []source{
			{name: "orders", fetch: func(ctx context.Context, limit int) ([]Item, error) {
				var rows []struct {
					ID   string `db:"id"`
					Date string `db:"date"`
				}
				if err := db.Select(ctx, pool, &rows,
					`SELECT id, date FROM orders ORDER BY date DESC LIMIT $1`, limit); err != nil {
					return nil, err
				}
				items := make([]Item, 0, len(rows))
				for _, r := range rows {
					items = append(items, Item{
						ID:        r.ID,
						Type:      "order",
						Title:     fmt.Sprintf("Order %s placed", r.ID),
						Timestamp: r.Date,
					})
				}
				return items, nil
			}},
			{name: "inventory", fetch: func(ctx context.Context, limit int) ([]Item, error) {
				var rows []struct {
					ID          string `db:"id"`
					LastUpdated string `db:"last_updated"`
				}
				if err := db.Select(ctx, pool, &rows,
					`SELECT id, last_updated FROM inventory ORDER BY last_updated DESC LIMIT $1`, limit); err != nil {
					return nil, err
				}
				items := make([]Item, 0, len(rows))
				for _, r := range rows {
					items = append(items, Item{
						ID:        r.ID,
						Type:      "inventory",
						Title:     fmt.Sprintf("Inventory updated for %s", r.ID),
						Timestamp: r.LastUpdated,
					})
				}
				return items, nil
			}},
			{name: "suppliers", fetch: func(ctx context.Context, limit int) ([]Item, error) {
				var rows []struct {
					ID        string `db:"id"`
					LastOrder string `db:"last_order"`
				}
				if err := db.Select(ctx, pool, &rows,
					`SELECT id, last_order FROM suppliers ORDER BY last_order DESC LIMIT $1`, limit); err != nil {
					return nil, err
				}
				items := make([]Item, 0, len(rows))
				for _, r := range rows {
					items = append(items, Item{
						ID:        r.ID,
						Type:      "supplier",
						Title:     fmt.Sprintf("Supplier activity %s", r.ID),
						Timestamp: r.LastOrder,
					})
				}
				return items, nil
			}},
			{name: "sales", fetch: func(ctx context.Context, limit int) ([]Item, error) {
				var rows []struct {
					ID   string `db:"id"`
					Date string `db:"date"`
					Time string `db:"time"`
				}
				if err := db.Select(ctx, pool, &rows,
					`SELECT id, date, time FROM sales ORDER BY date DESC LIMIT $1`, limit); err != nil {
					return nil, err
				}
				items := make([]Item, 0, len(rows))
				for _, r := range rows {
					items = append(items, Item{
						ID:        r.ID,
						Type:      "sale",
						Title:     fmt.Sprintf("Sale %s recorded", r.ID),
						Timestamp: strings.TrimSpace(r.Date + " " + r.Time),
					})
				}
				return items, nil
			}},
		},
	}
}

// Recent fetches up to limit rows from each source concurrently, merges
// them, and returns at most limit items sorted by timestamp descending.
// A failing source is skipped; it never fails the feed.
func (f *Feed) Recent(ctx context.Context, limit int) ([]Item, error) {
	if limit <= 0 {
		limit = 10
	}

	var (
		mu    sync.Mutex
		items []Item
		wg    sync.WaitGroup
	)
	for _, src := range f.sources {
		wg.Add(1)
		go func(src source) {
			defer wg.Done()
			fetched, err := src.fetch(ctx, limit)
			if err != nil {
				metrics.ActivitySourceErrors.WithLabelValues(src.name).Inc()
				f.log.Warn().Err(err).Str("source", src.name).Msg("activity source failed")
				return
			}
			mu.Lock()
			items = append(items, fetched...)
			mu.Unlock()
		}(src)
	}
	wg.Wait()

	return merge(items, limit), nil
}

// merge drops items without a timestamp, sorts the union newest first, and
// truncates to limit.
func merge(items []Item, limit int) []Item {
	kept := make([]Item, 0, len(items))
	for _, item := range items {
		if item.Timestamp == "" {
			continue
		}
		kept = append(kept, item)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return parseTimestamp(kept[i].Timestamp).After(parseTimestamp(kept[j].Timestamp))
	})

	if len(kept) > limit {
		kept = kept[:limit]
	}
	return kept
}

var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	time.RFC3339,
}

func parseTimestamp(s string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
