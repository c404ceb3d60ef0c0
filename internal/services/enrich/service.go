// Package enrich augments job records with skills and benefits inferred by
// dictionary matching over title and description. Pure; no I/O.
package enrich

import (
	"regexp"
	"strings"

	"github.com/ternarybob/colligo/internal/models"
)

type dictionaryEntry struct {
	term string
	re   *regexp.Regexp
}

// Service matches static dictionaries against job text.
type Service struct {
	skills   []dictionaryEntry
	benefits []dictionaryEntry
}

// NewService compiles the dictionary matchers once.
func NewService() *Service {
	return &Service{
		skills:   compileDictionary(skillTerms),
		benefits: compileDictionary(benefitTerms),
	}
}

// Enrich unions dictionary matches from title+description into the record's
// existing skill and benefit sets. Existing entries are preserved;
// duplicates are never introduced. The input is not mutated.
func (s *Service) Enrich(dto *models.JobDTO) *models.JobDTO {
	out := *dto
	text := dto.Title + " " + dto.Description

	out.Skills = unionMatches(out.Skills, s.skills, text)
	out.Benefits = unionMatches(out.Benefits, s.benefits, text)

	return &out
}

// unionMatches appends matched terms not already present, comparing
// case-insensitively so "react" and "React" stay one entry.
func unionMatches(existing []string, dict []dictionaryEntry, text string) []string {
	seen := make(map[string]bool, len(existing))
	for _, v := range existing {
		seen[strings.ToLower(v)] = true
	}

	result := existing
	for _, entry := range dict {
		if entry.re.MatchString(text) && !seen[strings.ToLower(entry.term)] {
			result = append(result, entry.term)
			seen[strings.ToLower(entry.term)] = true
		}
	}
	return result
}

// compileDictionary builds word-bounded case-insensitive matchers. Terms
// ending in a non-word character (C++, C#) anchor on whitespace or end of
// text instead of \b, which would not match after punctuation.
func compileDictionary(terms []string) []dictionaryEntry {
	entries := make([]dictionaryEntry, 0, len(terms))
	for _, term := range terms {
		escaped := regexp.QuoteMeta(strings.ToLower(term))
		var pattern string
		if endsWithWordChar(term) {
			pattern = `(?i)\b` + escaped + `\b`
		} else {
			pattern = `(?i)\b` + escaped + `(\s|$)`
		}
		entries = append(entries, dictionaryEntry{
			term: term,
			re:   regexp.MustCompile(pattern),
		})
	}
	return entries
}

func endsWithWordChar(term string) bool {
	if term == "" {
		return false
	}
	c := term[len(term)-1]
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
