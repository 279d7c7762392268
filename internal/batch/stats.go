package batch

import (
	"fmt"
	"strings"

	"github.com/smartjects/importer/constants"
)

// Stats aggregates the counters of one batch run. Counters are reset at the
// start of every run and only ever increase while it lasts.
type Stats struct {
	Total               int
	Processed           int
	SkippedNotRelevant  int
	SkippedExists       int
	SkippedEmptyTitle   int
	InvalidFormat       int
	Errors              int
	MatchedInstitutions int
	UnmappedByKind      map[constants.CategoryKind]int
}

func newStats() Stats {
	return Stats{UnmappedByKind: make(map[constants.CategoryKind]int)}
}

// Report is the consolidated outcome of one batch run.
type Report struct {
	Stats    Stats
	Results  []RowResult
	Unmapped []UnmappedTag
	TeamSync TeamSyncStats
}

// RowResult is the per-row entry of a batch report.
type RowResult struct {
	Title             string                              `json:"title"`
	Status            constants.RowStatus                 `json:"status"`
	Reason            constants.SkipReason                `json:"reason,omitempty"`
	MatchedCategories map[constants.CategoryKind][]string `json:"matched_categories,omitempty"`
	LogoTier          constants.LogoTier                  `json:"logo_tier,omitempty"`
	Err               string                              `json:"error,omitempty"`
}

// UnmappedTag is a token no tier accepted, kept for human review.
type UnmappedTag struct {
	Token string
	Kind  constants.CategoryKind
	Title string
}

// Summary renders the end-of-batch text: totals, skip breakdown, error and
// unmapped counts, and a head-limited detail listing per non-empty bucket.
func (r *Report) Summary(headN int) string {
	var b strings.Builder
	s := r.Stats
	fmt.Fprintf(&b, "Processing summary\n")
	fmt.Fprintf(&b, "  total: %d\n", s.Total)
	fmt.Fprintf(&b, "  processed: %d\n", s.Processed)
	fmt.Fprintf(&b, "  with logos: %d\n", s.MatchedInstitutions)
	fmt.Fprintf(&b, "  skipped (not relevant): %d\n", s.SkippedNotRelevant)
	fmt.Fprintf(&b, "  skipped (exists): %d\n", s.SkippedExists)
	fmt.Fprintf(&b, "  skipped (empty title): %d\n", s.SkippedEmptyTitle)
	fmt.Fprintf(&b, "  invalid format: %d\n", s.InvalidFormat)
	fmt.Fprintf(&b, "  errors: %d\n", s.Errors)

	for _, kind := range constants.Kinds() {
		if n := s.UnmappedByKind[kind]; n > 0 {
			fmt.Fprintf(&b, "  unmapped %s: %d\n", kind, n)
		}
	}

	if n := len(r.Unmapped); n > 0 {
		fmt.Fprintf(&b, "unmapped tags (first %d of %d):\n", min(headN, n), n)
		for i, tag := range r.Unmapped {
			if i >= headN {
				break
			}
			fmt.Fprintf(&b, "  [%s] %q (item %q)\n", tag.Kind, tag.Token, tag.Title)
		}
	}

	var failed []RowResult
	for _, res := range r.Results {
		if res.Status == constants.RowStatusError {
			failed = append(failed, res)
		}
	}
	if n := len(failed); n > 0 {
		fmt.Fprintf(&b, "failed rows (first %d of %d):\n", min(headN, n), n)
		for i, res := range failed {
			if i >= headN {
				break
			}
			fmt.Fprintf(&b, "  %q: %s\n", res.Title, res.Err)
		}
	}
	return b.String()
}
