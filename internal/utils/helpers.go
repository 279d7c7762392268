package utils

import (
	"github.com/smartjects/importer/gen/ent"
	importerpb "github.com/smartjects/importer/gen/proto/importer/v1"
	"github.com/smartjects/importer/internal/batch"
	"github.com/smartjects/importer/internal/entity"
	"github.com/smartjects/importer/internal/logos"
)

func ToItem(e *ent.Item) *entity.Item {
	return &entity.Item{
		ID:           e.ID,
		Title:        e.Title,
		Mission:      e.Mission,
		Problematics: e.Problematics,
		Scope:        e.Scope,
		Audience:     e.Audience,
		HowItWorks:   e.HowItWorks,
		Architecture: e.Architecture,
		Innovation:   e.Innovation,
		UseCase:      e.UseCase,
		ImageURL:     e.ImageURL,
		Team:         e.Team,
		Link:         e.Link,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToPBImportStats(s batch.Stats) *importerpb.ImportStats {
	unmapped := make(map[string]int32, len(s.UnmappedByKind))
	for kind, n := range s.UnmappedByKind {
		unmapped[string(kind)] = int32(n)
	}
	return &importerpb.ImportStats{
		Total:               int32(s.Total),
		Processed:           int32(s.Processed),
		SkippedNotRelevant:  int32(s.SkippedNotRelevant),
		SkippedExists:       int32(s.SkippedExists),
		SkippedEmptyTitle:   int32(s.SkippedEmptyTitle),
		InvalidFormat:       int32(s.InvalidFormat),
		Errors:              int32(s.Errors),
		MatchedInstitutions: int32(s.MatchedInstitutions),
		UnmappedByKind:      unmapped,
	}
}

func ToPBSyncStats(s *batch.SyncStats) *importerpb.SyncStats {
	refs := make(map[string]int32, len(s.NewReferences))
	for kind, n := range s.NewReferences {
		refs[string(kind)] = int32(n)
	}
	return &importerpb.SyncStats{
		TotalRows:     int32(s.TotalRows),
		Valid:         int32(s.Valid),
		InvalidFormat: int32(s.InvalidFormat),
		Created:       int32(s.Created),
		Updated:       int32(s.Updated),
		Skipped:       int32(s.Skipped),
		NewReferences: refs,
		Errors:        int32(len(s.Errors)),
	}
}

func ToPBRelinkStats(s logos.RelinkStats) *importerpb.RelinkStats {
	return &importerpb.RelinkStats{
		Total:          int32(s.Total),
		WithTeams:      int32(s.WithTeams),
		FoundMatches:   int32(s.FoundMatches),
		AlreadyCorrect: int32(s.AlreadyCorrect),
		Updated:        int32(s.Updated),
		Errors:         int32(s.Errors),
	}
}
