package handlers

import (
	"strings"
	"unicode"

	"github.com/Yofukashi625/fangyang-wiki-app/models"
)

// CJK markers that flag a course as not counting toward averages wherever
// they appear in the grade text (they occur inside words, e.g. 抵免).
var excludedGradeMarkers = []string{"抵", "退", "停"}

// Latin grade codes that flag exclusion only as a whole token, so a remark
// that merely contains the letter P is not misread as Pass.
var excludedGradeTokens = map[string]bool{"P": true, "W": true, "PASS": true}

func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// shouldCalculate reports whether a course counts toward the credit-weighted
// aggregates. Excluded: transfer credit (抵), withdrawal (退), stop
// enrollment (停), pass/withdraw letter codes (P / W / PASS) and physical
// education courses (體育 / PE). Unrecognized grades are included.
func shouldCalculate(course models.TranscriptCourse) bool {
	grade := strings.ToUpper(strings.TrimSpace(course.OriginalGrade))
	for _, marker := range excludedGradeMarkers {
		if strings.Contains(grade, marker) {
			return false
		}
	}
	for _, token := range tokenize(grade) {
		if excludedGradeTokens[token] {
			return false
		}
	}

	name := strings.ToUpper(course.Name)
	if strings.Contains(name, "體育") {
		return false
	}
	for _, token := range tokenize(name) {
		if token == "PE" {
			return false
		}
	}
	return true
}

// calculateSummary computes the credit-weighted mean GPA (4.0 scale) and
// percentage over the included courses. It is a pure function recomputed in
// full on every edit; with course lists in the tens of rows an incremental
// update buys nothing.
func calculateSummary(courses []models.TranscriptCourse) models.TranscriptSummary {
	var totalCredits, weightedGpaSum, weightedPercentSum float64

	for _, c := range courses {
		if !shouldCalculate(c) {
			continue
		}
		totalCredits += c.Credits
		weightedGpaSum += c.Credits * c.Gpa4
		weightedPercentSum += c.Credits * c.Percentage
	}

	summary := models.TranscriptSummary{TotalCredits: totalCredits}
	if totalCredits > 0 {
		summary.OverallGpa4 = weightedGpaSum / totalCredits
		summary.OverallPercentage = weightedPercentSum / totalCredits
	}
	return summary
}

// gradeToGpa4 converts a Taiwan percentage grade to the 4.0 scale:
// 80+ -> 4.0 (A), 70-79 -> 3.0 (B), 60-69 -> 2.0 (C), below 60 -> 0.0.
func gradeToGpa4(percentage float64) float64 {
	switch {
	case percentage >= 80:
		return 4.0
	case percentage >= 70:
		return 3.0
	case percentage >= 60:
		return 2.0
	default:
		return 0.0
	}
}

// normalizeCourses fills gpa4/percentage gaps the model sometimes leaves
// when the original grade is a plain numeric score.
func normalizeCourses(courses []models.TranscriptCourse) []models.TranscriptCourse {
	for i, c := range courses {
		if c.Percentage == 0 {
			if v := parseRequirementValue(c.OriginalGrade); v > 0 && v <= 100 {
				courses[i].Percentage = v
			}
		}
		if c.Gpa4 == 0 && courses[i].Percentage > 0 {
			courses[i].Gpa4 = gradeToGpa4(courses[i].Percentage)
		}
	}
	return courses
}
