package core

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopicQuery_Preset(t *testing.T) {
	q := TopicQuery("environment")
	assert.Equal(t, "What does the party say about Climate, Environment & Energy", q)
}

func TestTopicQuery_FreeForm(t *testing.T) {
	q := TopicQuery("Wie steht die Partei zur Schuldenbremse?")
	assert.Equal(t, "Wie steht die Partei zur Schuldenbremse?", q, "unknown keys pass through")
}

func TestTopicKeys_SortedAndComplete(t *testing.T) {
	keys := TopicKeys()
	assert.Len(t, keys, len(PoliticalTopics))
	assert.True(t, sort.StringsAreSorted(keys))
	assert.Contains(t, keys, "economy")
	assert.Contains(t, keys, "foreign_policy")
}
