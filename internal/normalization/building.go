package normalization

// buildingNames maps raw building-name strings as they appear in the source
// exports to their canonical forms. Lookup is exact: no case folding, no
// trimming, no fuzzy matching. Extend this table as new variants show up in
// the dumps; anything not listed passes through unchanged.
var buildingNames = map[string]string{
	"Davis":         "Davis Library",
	"Davis library": "Davis Library",
	"davis library": "Davis Library",

	"Undergraduate Library":            "House Undergraduate Library",
	"R.B. House Undergraduate Library": "House Undergraduate Library",
	"UL":                               "House Undergraduate Library",

	"Wilson":         "Wilson Library",
	"wilson library": "Wilson Library",

	"Student union":     "Student Union",
	"The Student Union": "Student Union",
	"FPG Student Union": "Student Union",

	"Phillips":      "Phillips Hall",
	"phillips hall": "Phillips Hall",

	"Genome Science Building": "Genome Sciences Building",
	"Genome Sciences":         "Genome Sciences Building",

	"Health Science Library": "Health Sciences Library",
	"HSL":                    "Health Sciences Library",

	"Murphey":     "Murphey Hall",
	"Murphy Hall": "Murphey Hall",
}

// CanonicalBuildingName resolves a free-text building name to its canonical
// form, or returns the input unchanged when no mapping exists.
func CanonicalBuildingName(name string) string {
	if canonical, ok := buildingNames[name]; ok {
		return canonical
	}
	return name
}
