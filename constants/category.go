package constants

// CategoryKind names one closed reference vocabulary that free-text tags are
// reconciled against. The string value is the backing table name.
type CategoryKind string

const (
	KindIndustry CategoryKind = "industries"
	KindAudience CategoryKind = "audience"
	KindFunction CategoryKind = "business_functions"
)

var allKinds = []CategoryKind{KindIndustry, KindAudience, KindFunction}

// Kinds returns every reference vocabulary, in snapshot-load order.
func Kinds() []CategoryKind {
	out := make([]CategoryKind, len(allKinds))
	copy(out, allKinds)
	return out
}

func (k CategoryKind) Valid() bool {
	for _, kind := range allKinds {
		if k == kind {
			return true
		}
	}
	return false
}
