// Package palette holds the static language color table for the UI.
// The table is immutable and shared across requests
package palette

// DefaultColor is the neutral grey used for unlisted languages
const DefaultColor = "#8b8b8b"

var colors = map[string]string{
	"Java":       "#b07219",
	"TypeScript": "#3178c6",
	"JavaScript": "#f1e05a",
	"Python":     "#3572A5",
	"CSS":        "#563d7c",
	"HTML":       "#e34c26",
	"C":          "#555555",
	"C++":        "#f34b7d",
	"C#":         "#178600",
	"Go":         "#00ADD8",
	"Rust":       "#dea584",
	"Ruby":       "#701516",
	"PHP":        "#4F5D95",
	"Swift":      "#F05138",
	"Kotlin":     "#A97BFF",
	"Scala":      "#c22d40",
	"Shell":      "#89e051",
	"Dockerfile": "#384d54",
	"SCSS":       "#c6538c",
	"Vue":        "#41b883",
}

// Color returns the hex color for a language, case sensitive as GitHub reports it
func Color(language string) string {
	if c, ok := colors[language]; ok {
		return c
	}
	return DefaultColor
}
