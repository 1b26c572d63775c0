package domain

import "strings"

// FilterCoffees returns the records whose name or origin contains query,
// ignoring case. An empty query returns records unchanged.
func FilterCoffees(records []CoffeeRecord, query string) []CoffeeRecord {
	if query == "" {
		return records
	}
	q := strings.ToLower(query)
	out := make([]CoffeeRecord, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Name), q) || strings.Contains(strings.ToLower(r.Origin), q) {
			out = append(out, r)
		}
	}
	return out
}
