package mapper

import "time"

// dateLayouts is the fixed precedence order for due_date parsing.
// Day-first beats month-first for ambiguous slash dates: "01/05/2025"
// parses as 1 May 2025.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"01/02/2006",
}

// ParseDate converts a date string to epoch milliseconds at midnight
// UTC. The first layout in the precedence order that parses wins.
// Returns false for empty or unparseable input.
func ParseDate(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			return t.UnixMilli(), true
		}
	}
	return 0, false
}
