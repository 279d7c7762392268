package constants

// MatchTier is the reconciliation strategy that produced a tag match.
// Tiers are tried in declaration order; the first hit wins.
type MatchTier string

const (
	TierExact      MatchTier = "exact"
	TierSubset     MatchTier = "subset"
	TierKeyword    MatchTier = "keyword"
	TierSimilarity MatchTier = "similarity"
	TierNone       MatchTier = "none"
)

// LogoTier is the strategy that matched an organization name against the
// institution registry.
type LogoTier string

const (
	LogoDirect            LogoTier = "direct"
	LogoCaseInsensitive   LogoTier = "case_insensitive"
	LogoPartial           LogoTier = "partial"
	LogoNormalizedExact   LogoTier = "normalized_exact"
	LogoNormalizedPartial LogoTier = "normalized_partial"
)
