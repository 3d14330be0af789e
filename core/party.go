package core

import (
	"fmt"
	"strings"
)

// Party is a canonical party identifier. The vocabulary is closed: source
// labels must be reconciled onto it at ingestion and query-building time,
// otherwise filters silently match nothing.
type Party string

const (
	PartyAfD    Party = "AfD"
	PartySPD    Party = "SPD"
	PartyCDUCSU Party = "CDU/CSU"
	PartyGruene Party = "BÜNDNIS 90/DIE GRÜNEN"
	PartyLinke  Party = "Die Linke"
)

// Parties lists the canonical vocabulary.
var Parties = []Party{PartyAfD, PartySPD, PartyCDUCSU, PartyGruene, PartyLinke}

// partyAliases maps normalized source spellings onto canonical parties.
// Keys are lowercased with trailing punctuation stripped.
var partyAliases = map[string]Party{
	"afd":                         PartyAfD,
	"alternative für deutschland": PartyAfD,
	"spd":                         PartySPD,
	"cdu/csu":                     PartyCDUCSU,
	"cdu":                         PartyCDUCSU,
	"csu":                         PartyCDUCSU,
	"cducsu":                      PartyCDUCSU,
	"union":                       PartyCDUCSU,
	"bündnis 90/die grünen":       PartyGruene,
	"buendnis 90/die gruenen":     PartyGruene,
	"die grünen":                  PartyGruene,
	"grüne":                       PartyGruene,
	"gruene":                      PartyGruene,
	"greens":                      PartyGruene,
	"die linke":                   PartyLinke,
	"linke":                       PartyLinke,
}

// ParseParty reconciles a source party label to its canonical form.
// Labels outside the vocabulary are rejected, never passed through.
func ParseParty(s string) (Party, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.TrimRight(key, ".")
	if p, ok := partyAliases[key]; ok {
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownParty, s)
}

// Valid reports whether the party is part of the canonical vocabulary.
func (p Party) Valid() bool {
	for _, known := range Parties {
		if p == known {
			return true
		}
	}
	return false
}
