// Package logos matches free-text organization names against the fixed
// registry of known institutions and their logo assets.
package logos

import (
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
)

// Registry is the institution->asset-URL lookup for one batch. Every entry
// is stored under both its original-case name and a lowercase alias, so the
// direct and case-insensitive tiers are plain map hits. Read-only after load.
type Registry struct {
	entries map[string]string
	// names holds the original-case keys in sorted order so containment
	// scans are deterministic.
	names  []string
	logger *slog.Logger
}

// NewRegistry builds a registry from name/URL pairs.
func NewRegistry(pairs map[string]string, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Registry{entries: make(map[string]string, len(pairs)*2), logger: logger}
	for name, url := range pairs {
		name = strings.TrimSpace(name)
		url = strings.TrimSpace(url)
		if name == "" || url == "" {
			continue
		}
		r.entries[name] = url
		r.entries[strings.ToLower(name)] = url
		r.names = append(r.names, name)
	}
	sort.Strings(r.names)
	return r
}

// LoadRegistry reads the semicolon-delimited institution registry file
// (columns: university;logo).
func LoadRegistry(path string, logger *slog.Logger) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadRegistry(f, logger)
}

// ReadRegistry parses registry CSV content from r.
func ReadRegistry(r io.Reader, logger *slog.Logger) (*Registry, error) {
	if logger == nil {
		logger = slog.Default()
	}
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}

	pairs := make(map[string]string)
	for i, rec := range records {
		if len(rec) < 2 {
			continue
		}
		name, url := strings.TrimSpace(rec[0]), strings.TrimSpace(rec[1])
		if i == 0 && strings.EqualFold(name, "university") {
			continue // header row
		}
		if name != "" && url != "" {
			pairs[name] = url
		}
	}

	reg := NewRegistry(pairs, logger)
	logger.Info("logos.registry.loaded", "institutions", reg.Size())
	return reg, nil
}

// Size counts distinct institutions. Entries are keyed twice (original case
// plus lowercase alias), so the count deduplicates by asset URL.
func (r *Registry) Size() int {
	urls := make(map[string]struct{}, len(r.entries))
	for _, url := range r.entries {
		urls[url] = struct{}{}
	}
	return len(urls)
}

// Institutions lists the original-case registry names, sorted.
func (r *Registry) Institutions() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

func (r *Registry) empty() bool {
	return len(r.entries) == 0
}
