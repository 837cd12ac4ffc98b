package engine

import (
	"sort"
	"time"

	"github.com/vendhub/storefront/pkg/models"
)

// Trending time frames.
const (
	TimeFrameDay   = "day"
	TimeFrameWeek  = "week"
	TimeFrameMonth = "month"
)

// ResolveTimeFrame normalizes a requested time frame; anything unrecognized
// (including the empty string) falls back to week.
func ResolveTimeFrame(frame string) string {
	switch frame {
	case TimeFrameDay, TimeFrameWeek, TimeFrameMonth:
		return frame
	default:
		return TimeFrameWeek
	}
}

// WindowStart returns the start of the calendar window for a time frame,
// evaluated in loc: midnight today for day, midnight Monday for week, and
// midnight on the 1st for month.
func WindowStart(frame string, now time.Time, loc *time.Location) time.Time {
	now = now.In(loc)
	switch ResolveTimeFrame(frame) {
	case TimeFrameDay:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	case TimeFrameMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	default:
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
		sinceMonday := (int(now.Weekday()) + 6) % 7
		return midnight.AddDate(0, 0, -sinceMonday)
	}
}

// Trending ranks products by the number of view interactions recorded at or
// after start. Products with no qualifying views never appear, regardless of
// their lifetime popularity. Equal counts are tie-broken by view count.
func Trending(catalog []models.Product, interactions []models.ProductInteraction, start time.Time, limit int) []models.Product {
	counts := make(map[int64]int)
	for _, in := range interactions {
		if in.Type != models.InteractionView || in.CreatedAt.Before(start) {
			continue
		}
		counts[in.ProductID]++
	}
	if len(counts) == 0 {
		return nil
	}

	// Walk the catalog rather than the count map so full ties keep a
	// deterministic order.
	var trending []models.Product
	for _, p := range catalog {
		if counts[p.ID] > 0 {
			trending = append(trending, p)
		}
	}

	sort.SliceStable(trending, func(i, j int) bool {
		ci, cj := counts[trending[i].ID], counts[trending[j].ID]
		if ci != cj {
			return ci > cj
		}
		return trending[i].Views > trending[j].Views
	})

	if limit > 0 && len(trending) > limit {
		trending = trending[:limit]
	}
	return trending
}
