package domain

import "strings"

// Category buckets a paid line item for display grouping in the
// confirmation emails. Nothing downstream depends on the bucket.
type Category string

const (
	CategoryRoom  Category = "room"
	CategoryAddon Category = "addon"
)

func (c Category) String() string {
	return string(c)
}

// addonKeywords are matched case-insensitively as substrings of the
// line-item description. Anything that matches none of them is treated
// as a room package. This is a heuristic: a room literally named
// "Addon Suite" would land in the addon bucket.
var addonKeywords = []string{"sketch", "track", "swatch", "addon", "add-on"}

// Classify decides which email section a line item is listed under.
func Classify(description string) Category {
	d := strings.ToLower(description)
	for _, kw := range addonKeywords {
		if strings.Contains(d, kw) {
			return CategoryAddon
		}
	}
	return CategoryRoom
}
