package reconcile

import "github.com/smartjects/importer/constants"

// KeywordTable maps a domain family name to the surface forms that signal it.
// Family names are matched against canonical entry names; surface forms are
// matched against the incoming token.
type KeywordTable map[string][]string

// DefaultSynonyms rewrites common abbreviations inside a token before
// keyword scoring. Replacements apply to whole words only.
func DefaultSynonyms() map[string]string {
	return map[string]string{
		"it":       "software",
		"tech":     "technology",
		"med":      "healthcare",
		"medicine": "healthcare",
		"fin":      "finance",
		"edu":      "education",
		"hr":       "human resources",
		"ml":       "machine learning",
		"agri":     "agriculture",
		"telco":    "telecommunications",
		"manufact": "manufacturing",
	}
}

// DefaultTables returns the per-vocabulary keyword tables. Each table is
// data only; the scorer in reconciler.go is shared by every vocabulary.
func DefaultTables() map[constants.CategoryKind]KeywordTable {
	return map[constants.CategoryKind]KeywordTable{
		constants.KindIndustry: {
			"healthcare":         {"health", "medical", "hospital", "clinic", "pharma", "biotech", "life sciences"},
			"finance":            {"bank", "banking", "fintech", "insurance", "investment", "financial"},
			"manufacturing":      {"factory", "industrial", "production", "automotive", "assembly"},
			"retail":             {"e-commerce", "ecommerce", "commerce", "consumer goods", "shopping"},
			"education":          {"school", "university", "academic", "learning", "edtech"},
			"energy":             {"utilities", "power", "oil", "gas", "renewable", "solar"},
			"technology":         {"software", "hardware", "computing", "digital", "cloud"},
			"agriculture":        {"farming", "crop", "food production", "livestock"},
			"transportation":     {"logistics", "shipping", "mobility", "freight", "aviation"},
			"construction":       {"real estate", "building", "infrastructure", "architecture"},
			"media":              {"entertainment", "gaming", "advertising", "publishing"},
			"telecommunications": {"telecom", "network", "wireless", "broadband"},
			"government":         {"public sector", "municipal", "defense", "civic"},
		},
		constants.KindAudience: {
			"researchers":   {"research", "scientist", "academia", "scholar"},
			"developers":    {"engineer", "programmer", "software developer"},
			"students":      {"learner", "undergraduate", "graduate", "pupil"},
			"educators":     {"teacher", "faculty", "professor", "instructor"},
			"clinicians":    {"doctor", "physician", "nurse", "medical staff"},
			"executives":    {"management", "decision maker", "leadership", "director"},
			"analysts":      {"data analyst", "business analyst", "strategist"},
			"patients":      {"patient", "caregiver"},
			"manufacturers": {"producer", "plant operator", "factory"},
			"policymakers":  {"regulator", "policy maker", "legislator"},
		},
		constants.KindFunction: {
			"marketing":                {"advertising", "branding", "campaign", "seo"},
			"sales":                    {"crm", "revenue", "pipeline", "selling"},
			"operations":               {"logistics", "supply chain", "procurement", "workflow"},
			"human resources":          {"recruiting", "talent", "hiring", "onboarding"},
			"finance":                  {"accounting", "budget", "payroll", "audit"},
			"customer service":         {"support", "helpdesk", "call center", "service desk"},
			"research and development": {"r&d", "innovation", "product development", "prototyping"},
			"information technology":   {"software", "infrastructure", "security", "networking"},
			"legal":                    {"compliance", "contract", "regulatory", "governance"},
			"quality":                  {"quality assurance", "inspection", "testing"},
		},
	}
}
