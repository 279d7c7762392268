package logos_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smartjects/importer/constants"
	"github.com/smartjects/importer/internal/logos"
)

func newTestRegistry(t *testing.T) *logos.Registry {
	t.Helper()
	return logos.NewRegistry(map[string]string{
		"Stanford University":                   "https://cdn.example.com/stanford.png",
		"Massachusetts Institute of Technology": "https://cdn.example.com/mit.png",
		"ETH Zurich":                            "https://cdn.example.com/eth.png",
	}, nil)
}

func TestFindMatchDirect(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	m := reg.FindMatch([]string{"Stanford University"})
	require.NotNil(t, m)
	require.Equal(t, constants.LogoDirect, m.Tier)
	require.Equal(t, "https://cdn.example.com/stanford.png", m.AssetURL)
}

func TestFindMatchCaseInsensitive(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	m := reg.FindMatch([]string{"stanford university"})
	require.NotNil(t, m)
	require.Equal(t, constants.LogoCaseInsensitive, m.Tier)
}

func TestFindMatchPartial(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	m := reg.FindMatch([]string{"Stanford University School of Medicine"})
	require.NotNil(t, m)
	require.Equal(t, constants.LogoPartial, m.Tier)
	require.Equal(t, "https://cdn.example.com/stanford.png", m.AssetURL)
}

func TestFindMatchNormalizedExact(t *testing.T) {
	t.Parallel()

	// "The Stanford" survives normalization as "stanford", equal to the
	// normalized registry entry.
	reg := newTestRegistry(t)
	m := reg.FindMatch([]string{"The Stanford"})
	require.NotNil(t, m)
	require.Equal(t, constants.LogoNormalizedExact, m.Tier)
	require.Equal(t, "https://cdn.example.com/stanford.png", m.AssetURL)
}

func TestFindMatchSkipsShortNames(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	require.Nil(t, reg.FindMatch([]string{"MIT"}))
}

func TestFindMatchFirstOrganizationWins(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	m := reg.FindMatch([]string{"Unknown Lab", "ETH Zurich", "Stanford University"})
	require.NotNil(t, m)
	require.Equal(t, "ETH Zurich", m.Organization)
	require.Equal(t, "https://cdn.example.com/eth.png", m.AssetURL)
}

func TestFindMatchNoMatch(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	require.Nil(t, reg.FindMatch([]string{"Completely Unknown Org"}))
	require.Nil(t, reg.FindMatch(nil))
}

func TestFindMatchEmptyRegistry(t *testing.T) {
	t.Parallel()

	reg := logos.NewRegistry(nil, nil)
	require.Nil(t, reg.FindMatch([]string{"Stanford University"}))
}

func TestReadRegistry(t *testing.T) {
	t.Parallel()

	csv := strings.Join([]string{
		"university;logo",
		"Stanford University;https://cdn.example.com/stanford.png",
		"ETH Zurich;https://cdn.example.com/eth.png",
		";missing-name.png",
		"No URL Institute;",
	}, "\n")

	reg, err := logos.ReadRegistry(strings.NewReader(csv), nil)
	require.NoError(t, err)
	require.Equal(t, 2, reg.Size())
	require.Equal(t, []string{"ETH Zurich", "Stanford University"}, reg.Institutions())
}
