package styles

import (
	"fmt"
	"time"
)

// PaneCountBadge renders "1 pane" or "N panes".
func (t *Theme) PaneCountBadge(count int) string {
	if count == 1 {
		return t.BadgeMuted.Render("1 pane")
	}
	return t.BadgeMuted.Render(fmt.Sprintf("%d panes", count))
}

// AccentBadge renders text on the accent background.
func (t *Theme) AccentBadge(text string) string {
	return t.Badge.Render(text)
}

// MutedBadge renders text on the muted background.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

const (
	day  = 24 * time.Hour
	week = 7 * day
)

// Ordered by age; the last entry covers everything older.
var ageUnits = []struct {
	below  time.Duration
	size   time.Duration
	suffix string
}{
	{time.Hour, time.Minute, "m"},
	{day, time.Hour, "h"},
	{week, day, "d"},
	{30 * day, week, "w"},
	{365 * day, 30 * day, "mo"},
	{0, 365 * day, "y"},
}

// RelativeTime renders the age of tm, such as "3h ago", for layout listings.
func RelativeTime(tm time.Time) string {
	return relativeTime(tm, time.Now())
}

func relativeTime(tm, now time.Time) string {
	age := now.Sub(tm)
	if age < time.Minute {
		return "just now"
	}
	for _, u := range ageUnits {
		if u.below == 0 || age < u.below {
			return fmt.Sprintf("%d%s ago", int(age/u.size), u.suffix)
		}
	}
	return ""
}
