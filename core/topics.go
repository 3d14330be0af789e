package core

import (
	"fmt"
	"sort"
)

// PoliticalTopics maps short topic keys to the full query phrasing used
// when comparing parties on a standard policy area.
var PoliticalTopics = map[string]string{
	"economy":        "Economy & Growth / Germany as an Industrial Nation",
	"social":         "Social Security & Welfare / Pensions",
	"work":           "Work, Labour Market & Skilled Workers",
	"education":      "Education & Equal Opportunities",
	"environment":    "Climate, Environment & Energy",
	"migration":      "Migration, Integration & Citizenship",
	"housing":        "Housing & Urban Development",
	"technology":     "Digitalization & Technological Innovation",
	"security":       "Internal Security, Law & Order",
	"foreign_policy": "Foreign Policy, Security & Europe",
}

// TopicKeys returns the preset topic keys in sorted order.
func TopicKeys() []string {
	keys := make([]string, 0, len(PoliticalTopics))
	for k := range PoliticalTopics {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// TopicQuery expands a preset topic key into the retrieval question asked
// of the corpus. Unknown keys are passed through as free-form topics.
func TopicQuery(topic string) string {
	if long, ok := PoliticalTopics[topic]; ok {
		return fmt.Sprintf("What does the party say about %s", long)
	}
	return topic
}
