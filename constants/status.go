package constants

// RowStatus is the terminal classification of one imported row.
type RowStatus string

// Stable values (store these exact strings in results and reports).
const (
	RowStatusSuccess       RowStatus = "success"
	RowStatusSkipped       RowStatus = "skipped"
	RowStatusError         RowStatus = "error"
	RowStatusInvalidFormat RowStatus = "invalid_format" // strict-mode parse failure on a required field
)

// SkipReason explains a RowStatusSkipped result.
type SkipReason string

const (
	SkipNotRelevant SkipReason = "not_relevant"
	SkipExists      SkipReason = "already_exists"
	SkipEmptyTitle  SkipReason = "empty_title"
)

// SummarizedNotRelevant is the literal marker in the summarized column that
// causes an unconditional skip before any matching work.
const SummarizedNotRelevant = "NO (not relevant)"
