package entity

// Row is one source-file row after alias-tolerant header mapping. All values
// are trimmed; tag cells stay raw until token extraction.
type Row struct {
	Title        string
	Mission      string
	Problematics string
	Scope        string
	Audience     string
	HowItWorks   string
	Architecture string
	Innovation   string
	UseCase      string
	Industries   string
	Functions    string
	Team         string
	Link         string
	PublishDate  string
	Summarized   string
}
