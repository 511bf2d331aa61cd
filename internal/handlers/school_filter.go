package handlers

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Yofukashi625/fangyang-wiki-app/config"
	"github.com/Yofukashi625/fangyang-wiki-app/models"
)

// Score types accepted by the eligibility filter.
const (
	ScoreTypeGPA   = "GPA"
	ScoreTypeTOEFL = "TOEFL"
	ScoreTypeIELTS = "IELTS"
)

// Countries with their own filter bucket; everything else falls under
// "Others".
var majorCountries = []string{"USA", "Canada", "UK", "Australia"}

var requirementNumberRe = regexp.MustCompile(`\d+(\.\d+)?`)

// parseRequirementValue extracts the leading numeric token from a free-text
// requirement string such as "3.5+" or "92 (min)". A string with no parseable
// number yields 0, indistinguishable from a genuine zero requirement.
func parseRequirementValue(valStr string) float64 {
	match := requirementNumberRe.FindString(valStr)
	if match == "" {
		return 0
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return v
}

// requirementFor picks the requirement text matching a score type.
func requirementFor(reqs models.SchoolRequirements, scoreType string) string {
	switch scoreType {
	case ScoreTypeGPA:
		return reqs.Gpa
	case ScoreTypeTOEFL:
		return reqs.Toefl
	case ScoreTypeIELTS:
		return reqs.Ielts
	}
	return ""
}

// checkScoreRequirement reports whether a school passes the user's score
// threshold for one score type. The comparison is inclusive (userScore >=
// requirement) and a parsed requirement of 0 always passes. A school that
// does not list the requirement at all is decided by the configured
// missing-requirement policy (PASS by default).
func checkScoreRequirement(school models.School, scoreType string, userScore float64) bool {
	reqStr := strings.TrimSpace(requirementFor(school.Requirements.Data(), scoreType))
	if reqStr == "" {
		return config.MissingRequirementPolicy == config.MissingRequirementPass
	}
	schoolScore := parseRequirementValue(reqStr)
	return schoolScore == 0 || userScore >= schoolScore
}

// matchesSearch applies the case-insensitive substring search over name,
// tags, programs and description (logical OR across fields).
func matchesSearch(school models.School, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(school.Name), term) {
		return true
	}
	for _, tag := range school.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	for _, program := range school.Programs {
		if strings.Contains(strings.ToLower(program), term) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(school.Description), term)
}

// matchesCountry applies the country selector. "All" (or empty) matches
// everything; "Others" matches schools outside the enumerated major set.
func matchesCountry(school models.School, country string) bool {
	if country == "" || country == "All" {
		return true
	}
	if country == "Others" {
		for _, major := range majorCountries {
			if school.Country == major {
				return false
			}
		}
		return true
	}
	return school.Country == country
}

// SchoolFilter bundles every filter input of the school list endpoint.
type SchoolFilter struct {
	SearchTerm string
	Country    string
	Type       string
	ScoreType  string
	ScoreValue float64
	// HasScore is false when the score filter is not configured (empty
	// type or unparseable value), in which case it is skipped entirely.
	HasScore bool
}

// FilterSchools applies search, country, type and eligibility filtering over
// the full list, preserving input order. No relevance re-sort happens.
func FilterSchools(schools []models.School, f SchoolFilter) []models.School {
	filtered := make([]models.School, 0, len(schools))
	for _, school := range schools {
		if !matchesSearch(school, f.SearchTerm) {
			continue
		}
		if !matchesCountry(school, f.Country) {
			continue
		}
		if f.Type != "" && f.Type != "All" && school.Type != f.Type {
			continue
		}
		if f.HasScore && !checkScoreRequirement(school, f.ScoreType, f.ScoreValue) {
			continue
		}
		filtered = append(filtered, school)
	}
	return filtered
}
