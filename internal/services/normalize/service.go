// Package normalize rewrites an accepted job record into canonical form.
// Every function here is pure: no I/O, no clock reads, no stored state
// beyond the configured defaults.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/ternarybob/colligo/internal/models"
)

// Salary period conversion factors to an annual figure.
// Workday math: 8 hours/day, 260 workdays/year.
const (
	hoursPerDay      = 8
	workdaysPerYear  = 260
	monthsPerYear    = 12
	annualHourFactor = hoursPerDay * workdaysPerYear
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	tagRe        = regexp.MustCompile(`<[^>]*>`)

	remoteRe = regexp.MustCompile(`(?i)\bremote\b`)
	hybridRe = regexp.MustCompile(`(?i)\bhybrid\b`)

	// seniorityRules are evaluated in order; first match wins.
	seniorityRules = []struct {
		level models.Seniority
		re    *regexp.Regexp
	}{
		{models.SeniorityEntry, regexp.MustCompile(`(?i)\b(entry[- ]level|junior|jr\.?|intern(ship)?|graduate)\b`)},
		{models.SenioritySenior, regexp.MustCompile(`(?i)\b(senior|sr\.?|principal|staff)\b`)},
		{models.SeniorityLead, regexp.MustCompile(`(?i)\b(lead|head of)\b`)},
		{models.SeniorityDirector, regexp.MustCompile(`(?i)\bdirector\b`)},
		{models.SeniorityVP, regexp.MustCompile(`(?i)\b(vp|vice president)\b`)},
		{models.SeniorityCXO, regexp.MustCompile(`(?i)\b(ceo|cto|cfo|coo|cpo|ciso|chief\s+\w+\s+officer)\b`)},
	}
)

// Service normalizes validated job DTOs.
type Service struct {
	baseCurrency   string
	defaultCountry string
}

// NewService creates a normalizer with the configured fallbacks.
func NewService(baseCurrency, defaultCountry string) *Service {
	return &Service{
		baseCurrency:   strings.ToUpper(baseCurrency),
		defaultCountry: strings.ToUpper(defaultCountry),
	}
}

// Normalize returns a canonical copy of the DTO. The input is not mutated.
func (s *Service) Normalize(dto *models.JobDTO) *models.JobDTO {
	out := *dto

	out.Title = s.NormalizeTitle(dto.Title)
	out.Location = s.normalizeLocation(dto.Location, dto.Title, dto.Description)
	out.Salary = s.normalizeSalary(dto.Salary)
	out.Seniority = s.normalizeSeniority(dto.Seniority, dto.Title, dto.Description)
	out.Description = StripTags(dto.Description)

	return &out
}

// NormalizeTitle lower-cases, collapses whitespace, expands synonyms and
// title-cases the result.
func (s *Service) NormalizeTitle(title string) string {
	title = strings.ToLower(strings.TrimSpace(title))
	title = whitespaceRe.ReplaceAllString(title, " ")
	if title == "" {
		return ""
	}

	words := strings.Split(title, " ")
	expanded := make([]string, 0, len(words))
	for _, w := range words {
		if full, ok := titleSynonyms[w]; ok {
			expanded = append(expanded, strings.Split(full, " ")...)
		} else {
			expanded = append(expanded, w)
		}
	}

	for i, w := range expanded {
		if i > 0 && smallWords[w] {
			continue
		}
		expanded[i] = capitalize(w)
	}

	return strings.Join(expanded, " ")
}

func (s *Service) normalizeLocation(loc models.Location, title, description string) models.Location {
	loc.Country = strings.ToUpper(strings.TrimSpace(loc.Country))
	if loc.Country == "" {
		loc.Country = s.defaultCountry
	}

	if loc.RemoteType == "" {
		loc.RemoteType = inferRemoteType(title + " " + description)
	}

	return loc
}

// normalizeSalary computes annualized figures from the quoted period.
// Amounts are never converted across currencies: NormalizedCurrency mirrors
// the base currency only when the source currency already matches it, and
// carries the source currency through unchanged otherwise.
func (s *Service) normalizeSalary(salary *models.Salary) *models.Salary {
	if salary == nil {
		return nil
	}
	out := *salary

	if out.Min != 0 || out.Max != 0 {
		factor := annualFactor(out.Period)
		out.NormalizedAnnualMin = out.Min * factor
		out.NormalizedAnnualMax = out.Max * factor
	}

	currency := strings.ToUpper(strings.TrimSpace(out.Currency))
	out.Currency = currency
	if currency == "" || currency == s.baseCurrency {
		out.NormalizedCurrency = s.baseCurrency
	} else {
		out.NormalizedCurrency = currency
	}

	return &out
}

func (s *Service) normalizeSeniority(declared models.Seniority, title, description string) models.Seniority {
	if declared != "" && declared != models.SeniorityUnknown {
		return declared
	}
	return InferSeniority(title + " " + description)
}

// InferSeniority scans text against the ordered keyword classes, defaulting
// to mid when nothing matches.
func InferSeniority(text string) models.Seniority {
	for _, rule := range seniorityRules {
		if rule.re.MatchString(text) {
			return rule.level
		}
	}
	return models.SeniorityMid
}

// inferRemoteType keyword-scans for an explicit working mode, defaulting to
// onsite.
func inferRemoteType(text string) models.RemoteType {
	switch {
	case remoteRe.MatchString(text):
		return models.RemoteTypeRemote
	case hybridRe.MatchString(text):
		return models.RemoteTypeHybrid
	default:
		return models.RemoteTypeOnsite
	}
}

// StripTags removes markup from free text with a lightweight tag sweep.
// This is deliberately not a full HTML parser; descriptions are stored as
// plain text and malformed markup degrades gracefully.
func StripTags(text string) string {
	if text == "" {
		return ""
	}
	text = tagRe.ReplaceAllString(text, " ")
	text = strings.NewReplacer(
		"&nbsp;", " ",
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
	).Replace(text)
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

func annualFactor(period models.SalaryPeriod) float64 {
	switch period {
	case models.SalaryPeriodHour:
		return annualHourFactor
	case models.SalaryPeriodDay:
		return workdaysPerYear
	case models.SalaryPeriodMonth:
		return monthsPerYear
	default:
		// Year or unspecified: treat the quoted figure as annual.
		return 1
	}
}

func capitalize(w string) string {
	if w == "" {
		return w
	}
	runes := []rune(w)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
