package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	require.Equal(t, 50, cfg.Importer.ChunkSize)
	require.Equal(t, 100*time.Millisecond, cfg.Importer.ChunkDelay)
	require.Equal(t, 2*time.Second, cfg.Importer.ProgressInterval)
	require.InDelta(t, 3.0, cfg.Importer.KeywordThreshold, 1e-9)
	require.InDelta(t, 0.5, cfg.Importer.SimilarityThreshold, 1e-9)
	require.Equal(t, "smartjects", cfg.Importer.SheetName)
	require.Equal(t, ":8080", cfg.Server.GRPCAddr)
}

func TestLoadConfigThresholdOverrides(t *testing.T) {
	t.Setenv("IMPORT_KEYWORD_THRESHOLD", "3.5")
	t.Setenv("IMPORT_SIMILARITY_THRESHOLD", "0.75")

	cfg := LoadConfig()
	require.InDelta(t, 3.5, cfg.Importer.KeywordThreshold, 1e-9)
	require.InDelta(t, 0.75, cfg.Importer.SimilarityThreshold, 1e-9)
}

func TestValidateRejectsMissingDSN(t *testing.T) {
	cfg := LoadConfig()
	cfg.Database.DSN = ""
	require.Error(t, cfg.Validate())

	cfg.Database.DSN = "postgres://localhost:5432/importer"
	require.NoError(t, cfg.Validate())
}
