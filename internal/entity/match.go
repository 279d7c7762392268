package entity

import "github.com/smartjects/importer/constants"

// MatchResult is the outcome of reconciling one tag token against a
// reference vocabulary. Tier is TierNone iff Entry is nil; Score is only
// meaningful for the keyword and similarity tiers.
type MatchResult struct {
	Entry *Reference
	Tier  constants.MatchTier
	Score float64
}

// Matched reports whether the token resolved to a canonical entry.
func (m MatchResult) Matched() bool {
	return m.Entry != nil && m.Tier != constants.TierNone
}

// LogoMatch is the outcome of matching an item's organization list against
// the institution registry.
type LogoMatch struct {
	Organization string
	AssetURL     string
	Tier         constants.LogoTier
}
