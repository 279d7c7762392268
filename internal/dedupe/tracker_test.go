package dedupe_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smartjects/importer/internal/dedupe"
)

func TestClassifyNormalizesTitles(t *testing.T) {
	t.Parallel()

	tr := dedupe.NewTracker()
	tr.Seed([]string{"Project X"})

	require.Equal(t, dedupe.Exists, tr.Classify("project x"))
	require.Equal(t, dedupe.Exists, tr.Classify("  Project X  "))
	require.Equal(t, dedupe.New, tr.Classify("Project Y"))
}

func TestClassifyEmptyTitle(t *testing.T) {
	t.Parallel()

	tr := dedupe.NewTracker()
	require.Equal(t, dedupe.Empty, tr.Classify(""))
	require.Equal(t, dedupe.Empty, tr.Classify("   "))
}

func TestRecordCatchesSameBatchDuplicates(t *testing.T) {
	t.Parallel()

	tr := dedupe.NewTracker()
	require.Equal(t, dedupe.New, tr.Classify("Project X"))
	tr.Record("Project X")
	require.Equal(t, dedupe.Exists, tr.Classify(" PROJECT X "))
	require.Equal(t, 1, tr.Len())
}

func TestSeedSkipsBlankTitles(t *testing.T) {
	t.Parallel()

	tr := dedupe.NewTracker()
	tr.Seed([]string{"", "  ", "Project X"})
	require.Equal(t, 1, tr.Len())
}
