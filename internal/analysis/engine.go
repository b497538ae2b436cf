// Package analysis implements the deterministic, rule-based resume assessment.
// Analyze is a pure function: no I/O, no shared state, identical output for
// identical input.
package analysis

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"resumelens/internal/domain"
)

// Scoring weights and cutoffs. These numbers are the algorithm itself, not
// deployment tuning, so they live here rather than in configuration.
const (
	skillCoverageMax = 60

	lengthGoodChars  = 1200
	lengthGoodPoints = 5
	lengthRichChars  = 2500
	lengthRichPoints = 3
	bulletPoints     = 4
	quantifiedPoints = 3

	detailThresholdChars = 900
	missingSkillsShown   = 8
)

// Analyze scores the extracted resume text against the given skill catalog.
// An empty catalog is a valid input: coverage then contributes nothing.
func Analyze(text string, catalog []string) domain.AnalysisResult {
	normalized := normalize(text)
	skills := dedupeCatalog(catalog)

	found := make([]string, 0, len(skills))
	missing := make([]string, 0, len(skills))
	for _, skill := range skills {
		if containsToken(normalized, strings.ToLower(skill)) {
			found = append(found, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	sort.Strings(found)
	sort.Strings(missing)

	sections := detectSections(normalized)
	hasBullets := hasBulletLine(normalized)
	hasNumbers := hasQuantifiableSignal(normalized)

	score := coverageScore(len(found), len(skills)) +
		structureScore(sections) +
		formattingScore(normalized, hasBullets, hasNumbers)
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return domain.AnalysisResult{
		ATSScore:      score,
		SkillsFound:   found,
		MissingSkills: missing,
		Suggestions:   buildSuggestions(normalized, sections, hasBullets, hasNumbers, missing),
	}
}

// dedupeCatalog trims entries, drops empties, and removes duplicates while
// preserving first-seen order.
func dedupeCatalog(catalog []string) []string {
	seen := make(map[string]bool, len(catalog))
	out := make([]string, 0, len(catalog))
	for _, entry := range catalog {
		entry = strings.TrimSpace(entry)
		if entry == "" || seen[entry] {
			continue
		}
		seen[entry] = true
		out = append(out, entry)
	}
	return out
}

// coverageScore contributes up to skillCoverageMax points, proportional to
// the matched share of the catalog.
func coverageScore(matched, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(skillCoverageMax) * float64(matched) / float64(total)))
}

// structureScore sums the fixed per-section weights over detected sections.
func structureScore(sections map[string]bool) int {
	score := 0
	for _, section := range sectionOrder {
		if sections[section] {
			score += sectionWeights[section]
		}
	}
	return score
}

// formattingScore rewards length, bullet usage, and quantified statements.
func formattingScore(normalized string, hasBullets, hasNumbers bool) int {
	score := 0
	if len(normalized) >= lengthGoodChars {
		score += lengthGoodPoints
	}
	if len(normalized) >= lengthRichChars {
		score += lengthRichPoints
	}
	if hasBullets {
		score += bulletPoints
	}
	if hasNumbers {
		score += quantifiedPoints
	}
	return score
}

// buildSuggestions evaluates every improvement rule independently, in fixed
// priority order. Multiple suggestions may co-occur.
func buildSuggestions(normalized string, sections map[string]bool, hasBullets, hasNumbers bool, missing []string) []string {
	suggestions := make([]string, 0, 6)

	if !sections[sectionSkills] {
		suggestions = append(suggestions, "Add a dedicated skills section listing your core technologies.")
	}
	if !sections[sectionExperience] {
		suggestions = append(suggestions, "Add a work experience section describing your recent roles.")
	}
	if !hasBullets {
		suggestions = append(suggestions, "Use bullet points to make your accomplishments easier to scan.")
	}
	if !hasNumbers {
		suggestions = append(suggestions, "Add measurable results, such as percentages, years, or counts.")
	}
	if len(missing) > 0 {
		shown := missing
		suffix := ""
		if len(shown) > missingSkillsShown {
			shown = shown[:missingSkillsShown]
			suffix = ", ..."
		}
		suggestions = append(suggestions,
			fmt.Sprintf("Consider incorporating these skills if you have them: %s%s", strings.Join(shown, ", "), suffix))
	}
	if len(normalized) < detailThresholdChars {
		suggestions = append(suggestions, "Add more detail about your work; the resume reads as very short.")
	}

	return suggestions
}
