package domain

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		description string
		want        Category
	}{
		{"Living Room", CategoryRoom},
		{"2 x Bedroom", CategoryRoom},
		{"Concept Sketch", CategoryAddon},
		{"Fast-Track Delivery", CategoryAddon},
		{"Fabric Swatch Pack", CategoryAddon},
		{"Lighting ADDON", CategoryAddon},
		{"Extra Add-On", CategoryAddon},
		{"SKETCH", CategoryAddon},
		{"", CategoryRoom},
		// Known false positive of the keyword heuristic.
		{"Addon Suite", CategoryAddon},
	}
	for _, c := range cases {
		if got := Classify(c.description); got != c.want {
			t.Fatalf("Classify(%q) = %q, want %q", c.description, got, c.want)
		}
	}
}
