// Package reconcile maps free-text tag tokens onto the closed reference
// vocabularies. It never invents entries: a token either resolves to one
// canonical entry of the per-batch snapshot or stays unmatched.
package reconcile

import (
	"regexp"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/smartjects/importer/constants"
	"github.com/smartjects/importer/internal/entity"
)

// Config carries the acceptance thresholds and the data-driven tables the
// generic scorer runs on. Zero-value thresholds fall back to the defaults.
type Config struct {
	// KeywordThreshold is the score a keyword-tier candidate must strictly
	// exceed to be accepted.
	KeywordThreshold float64
	// SimilarityThreshold is the score bound for the similarity fallback
	// tier, used when a vocabulary has no keyword table.
	SimilarityThreshold float64
	Tables              map[constants.CategoryKind]KeywordTable
	Synonyms            map[string]string
}

// DefaultConfig returns the production thresholds and tables.
func DefaultConfig() Config {
	return Config{
		KeywordThreshold:    3,
		SimilarityThreshold: 0.5,
		Tables:              DefaultTables(),
		Synonyms:            DefaultSynonyms(),
	}
}

// Reconciler reconciles tokens against immutable vocabulary snapshots.
// It is a pure in-memory computation: safe to call between any two rows,
// deterministic given a fixed snapshot.
type Reconciler struct {
	cfg       Config
	snapshots map[constants.CategoryKind][]entity.Reference
}

// New builds a Reconciler over the given snapshots. The snapshot slices are
// not copied; callers must not mutate them during a batch.
func New(snapshots map[constants.CategoryKind][]entity.Reference, cfg Config) *Reconciler {
	if cfg.KeywordThreshold == 0 {
		cfg.KeywordThreshold = 3
	}
	if cfg.SimilarityThreshold == 0 {
		cfg.SimilarityThreshold = 0.5
	}
	return &Reconciler{cfg: cfg, snapshots: snapshots}
}

// educationalPattern flags tokens and entries that name an academic audience.
var educationalPattern = regexp.MustCompile(`(?i)\b(universit|college|student|facult|academ|school|professor|educat|research)`)

// Reconcile resolves one token against the snapshot for kind. Tiers are
// tried in a fixed order and the first hit wins: exact, structural subset,
// keyword scoring (vocabularies with a table), similarity fallback.
func (r *Reconciler) Reconcile(token string, kind constants.CategoryKind) entity.MatchResult {
	token = strings.TrimSpace(token)
	snapshot := r.snapshots[kind]
	if token == "" || len(snapshot) == 0 {
		return entity.MatchResult{Tier: constants.TierNone}
	}

	// Tier 1: case-insensitive full-string equality.
	for i := range snapshot {
		if strings.EqualFold(token, snapshot[i].Name) {
			return entity.MatchResult{Entry: &snapshot[i], Tier: constants.TierExact}
		}
	}

	// Tier 2: word-set subset in either direction.
	tokenWords := wordSet(token)
	if len(tokenWords) > 0 {
		for i := range snapshot {
			nameWords := wordSet(snapshot[i].Name)
			if len(nameWords) == 0 {
				continue
			}
			if isSubset(tokenWords, nameWords) || isSubset(nameWords, tokenWords) {
				return entity.MatchResult{Entry: &snapshot[i], Tier: constants.TierSubset}
			}
		}
	}

	table, hasTable := r.cfg.Tables[kind]
	if hasTable {
		return r.keywordTier(token, kind, snapshot, table)
	}
	return r.similarityTier(token, snapshot)
}

func (r *Reconciler) keywordTier(token string, kind constants.CategoryKind, snapshot []entity.Reference, table KeywordTable) entity.MatchResult {
	rewritten := rewriteSynonyms(strings.ToLower(token), r.cfg.Synonyms)

	// Audience tokens naming an academic population prefer academic entries
	// over plain keyword scoring.
	if kind == constants.KindAudience && educationalPattern.MatchString(token) {
		best := -1.0
		idx := -1
		for i := range snapshot {
			if !educationalPattern.MatchString(snapshot[i].Name) {
				continue
			}
			if s := r.score(rewritten, snapshot[i].Name, table); s > best {
				best, idx = s, i
			}
		}
		if idx >= 0 {
			return entity.MatchResult{Entry: &snapshot[idx], Tier: constants.TierKeyword, Score: best}
		}
	}

	bestScore := -1.0
	bestIdx := -1
	for i := range snapshot {
		s := r.score(rewritten, snapshot[i].Name, table)
		if s > bestScore {
			bestScore, bestIdx = s, i
		}
	}
	if bestIdx >= 0 && bestScore > r.cfg.KeywordThreshold {
		return entity.MatchResult{Entry: &snapshot[bestIdx], Tier: constants.TierKeyword, Score: bestScore}
	}
	return entity.MatchResult{Tier: constants.TierNone}
}

func (r *Reconciler) similarityTier(token string, snapshot []entity.Reference) entity.MatchResult {
	tl := strings.ToLower(token)
	bestScore := -1.0
	bestIdx := -1
	for i := range snapshot {
		nl := strings.ToLower(snapshot[i].Name)
		s := levenshtein.Match(tl, nl, nil) + wordOverlap(tl, nl)*0.5
		if s > bestScore {
			bestScore, bestIdx = s, i
		}
	}
	if bestIdx >= 0 && bestScore > r.cfg.SimilarityThreshold {
		return entity.MatchResult{Entry: &snapshot[bestIdx], Tier: constants.TierSimilarity, Score: bestScore}
	}
	return entity.MatchResult{Tier: constants.TierNone}
}

// score rates one canonical name against a synonym-rewritten token:
// exact keyword hits in both sides weigh 3x keyword length, a keyword in the
// token whose family name appears in the canonical name weighs 2x, a single
// keyword word loosely present in the token adds 1; a word-overlap bonus and
// the scaled similarity ratio complete the total.
func (r *Reconciler) score(rewrittenToken, name string, table KeywordTable) float64 {
	nl := strings.ToLower(name)
	score := 0.0
	for family, keywords := range table {
		for _, kw := range keywords {
			inToken := strings.Contains(rewrittenToken, kw)
			switch {
			case inToken && strings.Contains(nl, kw):
				score += 3 * float64(len(kw))
			case inToken && strings.Contains(nl, family):
				score += 2 * float64(len(kw))
			default:
				for _, w := range strings.Fields(kw) {
					if containsWord(rewrittenToken, w) {
						score++
						break
					}
				}
			}
		}
	}
	score += wordOverlap(rewrittenToken, nl) * 5
	score += levenshtein.Match(rewrittenToken, nl, nil) * 10
	return score
}

func rewriteSynonyms(token string, synonyms map[string]string) string {
	if len(synonyms) == 0 {
		return token
	}
	words := strings.Fields(token)
	for i, w := range words {
		if repl, ok := synonyms[w]; ok {
			words[i] = repl
		}
	}
	return strings.Join(words, " ")
}

// wordSet lowercases and splits a phrase into its distinct alphanumeric words.
func wordSet(s string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, w := range strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !isAlnum(r)
	}) {
		out[w] = struct{}{}
	}
	return out
}

func isAlnum(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r >= 'A' && r <= 'Z'
}

func isSubset(a, b map[string]struct{}) bool {
	for w := range a {
		if _, ok := b[w]; !ok {
			return false
		}
	}
	return true
}

// wordOverlap is |common words| / min(word counts), in [0,1].
func wordOverlap(a, b string) float64 {
	aw, bw := wordSet(a), wordSet(b)
	if len(aw) == 0 || len(bw) == 0 {
		return 0
	}
	common := 0
	for w := range aw {
		if _, ok := bw[w]; ok {
			common++
		}
	}
	minLen := len(aw)
	if len(bw) < minLen {
		minLen = len(bw)
	}
	return float64(common) / float64(minLen)
}

func containsWord(s, word string) bool {
	for _, w := range strings.Fields(s) {
		if w == word {
			return true
		}
	}
	return false
}
