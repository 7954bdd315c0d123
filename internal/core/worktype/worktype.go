// Package worktype classifies commit messages into coarse work categories
package worktype

import "strings"

// Category is one of the five work buckets
type Category string

// Categories in match priority order; Feature is the default
const (
	Bugfix   Category = "bugfix"
	Test     Category = "test"
	Docs     Category = "docs"
	Refactor Category = "refactor"
	Feature  Category = "feature"
)

// ordered keyword taxonomy; first match wins
var taxonomy = []struct {
	cat      Category
	keywords []string
}{
	{Bugfix, []string{"fix", "bug", "hotfix", "patch"}},
	{Test, []string{"test", "spec"}},
	{Docs, []string{"doc", "docs", "readme"}},
	{Refactor, []string{"refactor", "cleanup"}},
}

// Classify buckets a commit message by its lower-cased first line
func Classify(message string) Category {
	line := message
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	line = strings.ToLower(line)

	for _, entry := range taxonomy {
		for _, kw := range entry.keywords {
			if strings.Contains(line, kw) {
				return entry.cat
			}
		}
	}
	return Feature
}

// Counts tallies classified commits per category
type Counts struct {
	Feature  int `json:"feature"`
	Bugfix   int `json:"bugfix"`
	Test     int `json:"test"`
	Docs     int `json:"docs"`
	Refactor int `json:"refactor"`
}

// Add classifies message and bumps the matching counter
func (c *Counts) Add(message string) {
	switch Classify(message) {
	case Bugfix:
		c.Bugfix++
	case Test:
		c.Test++
	case Docs:
		c.Docs++
	case Refactor:
		c.Refactor++
	default:
		c.Feature++
	}
}
