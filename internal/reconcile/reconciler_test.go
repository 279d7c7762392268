package reconcile_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/smartjects/importer/constants"
	"github.com/smartjects/importer/internal/entity"
	"github.com/smartjects/importer/internal/reconcile"
)

func snapshot(names ...string) []entity.Reference {
	out := make([]entity.Reference, len(names))
	for i, n := range names {
		out[i] = entity.Reference{ID: uuid.New(), Name: n}
	}
	return out
}

func newReconciler(kind constants.CategoryKind, names ...string) *reconcile.Reconciler {
	return reconcile.New(map[constants.CategoryKind][]entity.Reference{
		kind: snapshot(names...),
	}, reconcile.DefaultConfig())
}

func TestReconcileExactTier(t *testing.T) {
	t.Parallel()

	r := newReconciler(constants.KindIndustry, "Healthcare", "Finance & Banking")
	res := r.Reconcile("  healthcare ", constants.KindIndustry)
	require.True(t, res.Matched())
	require.Equal(t, constants.TierExact, res.Tier)
	require.Equal(t, "Healthcare", res.Entry.Name)
}

func TestReconcileSubsetTier(t *testing.T) {
	t.Parallel()

	// "AI" is a word subset of "AI & Machine Learning"; punctuation does
	// not take part in the comparison.
	r := newReconciler(constants.KindIndustry, "AI & Machine Learning")
	res := r.Reconcile("AI", constants.KindIndustry)
	require.True(t, res.Matched())
	require.Equal(t, constants.TierSubset, res.Tier)
	require.Equal(t, "AI & Machine Learning", res.Entry.Name)
}

func TestReconcileSubsetEitherDirection(t *testing.T) {
	t.Parallel()

	r := newReconciler(constants.KindIndustry, "Retail")
	res := r.Reconcile("Retail and Consumer Goods", constants.KindIndustry)
	require.Equal(t, constants.TierSubset, res.Tier)
}

func TestReconcileKeywordTier(t *testing.T) {
	t.Parallel()

	r := newReconciler(constants.KindIndustry, "Healthcare & Life Sciences", "Retail & E-commerce")
	res := r.Reconcile("hospital and clinical software", constants.KindIndustry)
	require.True(t, res.Matched())
	require.Equal(t, constants.TierKeyword, res.Tier)
	require.Equal(t, "Healthcare & Life Sciences", res.Entry.Name)
}

func TestReconcileSynonymRewrite(t *testing.T) {
	t.Parallel()

	// "med" rewrites to "healthcare" before scoring, which lands the token
	// on the healthcare entry.
	r := newReconciler(constants.KindIndustry, "Healthcare & Life Sciences", "Construction")
	res := r.Reconcile("med devices", constants.KindIndustry)
	require.True(t, res.Matched())
	require.Equal(t, "Healthcare & Life Sciences", res.Entry.Name)
}

func TestReconcileAudienceEducationalPreference(t *testing.T) {
	t.Parallel()

	r := newReconciler(constants.KindAudience, "Hospital Executives", "University Researchers")
	res := r.Reconcile("academic faculty", constants.KindAudience)
	require.True(t, res.Matched())
	require.Equal(t, constants.TierKeyword, res.Tier)
	require.Equal(t, "University Researchers", res.Entry.Name)
}

func TestReconcileUnmatchableToken(t *testing.T) {
	t.Parallel()

	r := newReconciler(constants.KindIndustry, "Healthcare & Life Sciences")
	res := r.Reconcile("zzzzqqqq", constants.KindIndustry)
	require.False(t, res.Matched())
	require.Equal(t, constants.TierNone, res.Tier)
	require.Nil(t, res.Entry)
}

func TestReconcileEmptyToken(t *testing.T) {
	t.Parallel()

	r := newReconciler(constants.KindIndustry, "Healthcare")
	res := r.Reconcile("   ", constants.KindIndustry)
	require.False(t, res.Matched())
}

func TestReconcileEmptySnapshot(t *testing.T) {
	t.Parallel()

	r := reconcile.New(map[constants.CategoryKind][]entity.Reference{}, reconcile.DefaultConfig())
	res := r.Reconcile("Healthcare", constants.KindIndustry)
	require.False(t, res.Matched())
}

func TestReconcileSimilarityFallbackWithoutTable(t *testing.T) {
	t.Parallel()

	cfg := reconcile.DefaultConfig()
	delete(cfg.Tables, constants.KindFunction)
	r := reconcile.New(map[constants.CategoryKind][]entity.Reference{
		constants.KindFunction: snapshot("Marketing Operations"),
	}, cfg)

	res := r.Reconcile("markating operations", constants.KindFunction)
	require.True(t, res.Matched())
	require.Equal(t, constants.TierSimilarity, res.Tier)
}

func TestReconcileSimilarityBelowThreshold(t *testing.T) {
	t.Parallel()

	cfg := reconcile.DefaultConfig()
	delete(cfg.Tables, constants.KindFunction)
	r := reconcile.New(map[constants.CategoryKind][]entity.Reference{
		constants.KindFunction: snapshot("Marketing Operations"),
	}, cfg)

	res := r.Reconcile("xq", constants.KindFunction)
	require.False(t, res.Matched())
}

func TestReconcileDeterministic(t *testing.T) {
	t.Parallel()

	r := newReconciler(constants.KindIndustry, "Healthcare & Life Sciences", "Finance & Banking", "Education")
	first := r.Reconcile("clinical software", constants.KindIndustry)
	for i := 0; i < 20; i++ {
		again := r.Reconcile("clinical software", constants.KindIndustry)
		require.Equal(t, first.Tier, again.Tier)
		if first.Entry != nil {
			require.Equal(t, first.Entry.Name, again.Entry.Name)
		}
	}
}

// Threshold boundary: with a token and name built from disjoint character
// sets, the similarity and word-overlap terms are exactly zero, so the score
// is the sum of the loose keyword hits (+1 each). Acceptance requires the
// score to strictly exceed the threshold.
func TestReconcileKeywordThresholdBoundary(t *testing.T) {
	t.Parallel()

	newBoundaryReconciler := func(names []string, keywords []string, threshold float64) *reconcile.Reconciler {
		cfg := reconcile.Config{
			KeywordThreshold:    threshold,
			SimilarityThreshold: 0.5,
			Tables: map[constants.CategoryKind]reconcile.KeywordTable{
				constants.KindIndustry: {"ffff": keywords},
			},
		}
		return reconcile.New(map[constants.CategoryKind][]entity.Reference{
			constants.KindIndustry: snapshot(names...),
		}, cfg)
	}

	// Score exactly 3 (three loose keyword hits) is rejected at threshold 3.
	r := newBoundaryReconciler([]string{"qqqqkkkkjjjjmm"}, []string{"xxxx", "zzzz", "wwww"}, 3)
	res := r.Reconcile("xxxx zzzz wwww", constants.KindIndustry)
	require.False(t, res.Matched())
	require.Equal(t, constants.TierNone, res.Tier)

	// Score 4 (four hits) is strictly above threshold 3 and accepted.
	r = newBoundaryReconciler([]string{"qqqqkkkkjjjjmmnnppp"}, []string{"xxxx", "zzzz", "wwww", "vvvv"}, 3)
	res = r.Reconcile("xxxx zzzz wwww vvvv", constants.KindIndustry)
	require.True(t, res.Matched())
	require.Equal(t, constants.TierKeyword, res.Tier)
	require.InDelta(t, 4, res.Score, 1e-9)

	// The same 3-scoring candidate passes once the threshold drops below it;
	// thresholds are fractional.
	r = newBoundaryReconciler([]string{"qqqqkkkkjjjjmm"}, []string{"xxxx", "zzzz", "wwww"}, 2.5)
	res = r.Reconcile("xxxx zzzz wwww", constants.KindIndustry)
	require.True(t, res.Matched())
	require.Equal(t, constants.TierKeyword, res.Tier)
	require.InDelta(t, 3, res.Score, 1e-9)
}
