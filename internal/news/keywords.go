package news

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Lists is the YAML config structure for the tunable keyword and feed
// lists. Scoring weights evolved several times upstream, so they live in
// config instead of code.
//
// query_keywords:
//   - injury
// scoring_keywords:
//   - injury
// feeds:
//   - https://...
type Lists struct {
	QueryKeywords   []string `yaml:"query_keywords"`
	ScoringKeywords []string `yaml:"scoring_keywords"`
	Feeds           []string `yaml:"feeds"`
}

// DefaultLists returns the built-in keyword sets used when no config
// file is present.
func DefaultLists() *Lists {
	return &Lists{
		QueryKeywords: []string{"injury", "transfer", "tactics", "formation"},
		ScoringKeywords: []string{
			"injury", "transfer", "tactics", "formation",
			"coach", "manager", "suspended", "fitness",
			"training", "strategy", "lineup", "squad",
		},
	}
}

// LoadLists reads keyword and feed lists from a YAML file. Missing
// sections fall back to the built-in defaults.
func LoadLists(path string) (*Lists, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lists Lists
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&lists); err != nil {
		return nil, err
	}

	defaults := DefaultLists()
	if len(lists.QueryKeywords) == 0 {
		lists.QueryKeywords = defaults.QueryKeywords
	}
	if len(lists.ScoringKeywords) == 0 {
		lists.ScoringKeywords = defaults.ScoringKeywords
	}
	return &lists, nil
}
