package logos

import (
	"regexp"
	"strings"

	"github.com/smartjects/importer/constants"
	"github.com/smartjects/importer/internal/entity"
)

var (
	reLeadingThe    = regexp.MustCompile(`^the\s+`)
	reInstSuffix    = regexp.MustCompile(`\s+(university|college|institute|school)(\s+of\s+[^,]+)?$`)
	reOfTechnology  = regexp.MustCompile(`\s+of\s+technology$`)
	reOfSciAndTech  = regexp.MustCompile(`\s+of\s+science\s+and\s+technology$`)
	reParenthetical = regexp.MustCompile(`\s+\([^)]+\)$`)
	reWhitespace    = regexp.MustCompile(`\s+`)
)

// normalizeName strips the generic prefix/suffix noise around an institution
// name so that "Stanford University" and "Stanford" compare equal.
func normalizeName(name string) string {
	name = strings.ToLower(name)
	name = reLeadingThe.ReplaceAllString(name, "")
	name = reInstSuffix.ReplaceAllString(name, "")
	name = reOfSciAndTech.ReplaceAllString(name, "")
	name = reOfTechnology.ReplaceAllString(name, "")
	name = reParenthetical.ReplaceAllString(name, "")
	return strings.TrimSpace(reWhitespace.ReplaceAllString(name, " "))
}

// FindMatch tries each organization in input order and returns the first one
// that matches any registry entry through any tier; the whole search
// short-circuits on that organization. Returns nil when nothing matches.
//
// Per-organization tier order: direct key hit, case-insensitive key hit,
// partial containment (entries longer than 10 chars), normalized exact,
// normalized partial (normalized forms longer than 5 chars). Organizations
// shorter than 5 characters are skipped as too ambiguous.
func (r *Registry) FindMatch(organizations []string) *entity.LogoMatch {
	if r.empty() {
		return nil
	}

	for _, org := range organizations {
		org = strings.TrimSpace(org)
		if len(org) < 5 {
			continue
		}

		if url, ok := r.entries[org]; ok {
			return &entity.LogoMatch{Organization: org, AssetURL: url, Tier: constants.LogoDirect}
		}

		orgLower := strings.ToLower(org)
		if url, ok := r.entries[orgLower]; ok {
			return &entity.LogoMatch{Organization: org, AssetURL: url, Tier: constants.LogoCaseInsensitive}
		}

		if m := r.partialMatch(org, orgLower); m != nil {
			return m
		}
		if m := r.normalizedMatch(org); m != nil {
			return m
		}
	}
	return nil
}

func (r *Registry) partialMatch(org, orgLower string) *entity.LogoMatch {
	if len(orgLower) <= 10 {
		return nil
	}
	for _, name := range r.names {
		nameLower := strings.ToLower(name)
		if len(nameLower) > 10 &&
			(strings.Contains(orgLower, nameLower) || strings.Contains(nameLower, orgLower)) {
			return &entity.LogoMatch{Organization: org, AssetURL: r.entries[name], Tier: constants.LogoPartial}
		}
	}
	return nil
}

func (r *Registry) normalizedMatch(org string) *entity.LogoMatch {
	normOrg := normalizeName(org)
	if len(normOrg) <= 3 {
		return nil
	}
	var partial *entity.LogoMatch
	for _, name := range r.names {
		normName := normalizeName(name)
		if normOrg == normName {
			return &entity.LogoMatch{Organization: org, AssetURL: r.entries[name], Tier: constants.LogoNormalizedExact}
		}
		if partial == nil && len(normOrg) > 5 && len(normName) > 5 &&
			(strings.Contains(normOrg, normName) || strings.Contains(normName, normOrg)) {
			partial = &entity.LogoMatch{Organization: org, AssetURL: r.entries[name], Tier: constants.LogoNormalizedPartial}
		}
	}
	return partial
}
