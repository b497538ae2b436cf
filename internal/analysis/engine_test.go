package analysis_test

import (
	"encoding/json"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumelens/internal/analysis"
)

// filler produces normalized-stable prose of at least n characters with no
// digits, bullets, section labels, or default-catalog skills.
func filler(n int) string {
	var sb strings.Builder
	for sb.Len() < n {
		sb.WriteString("lorem ipsum dolor sit amet consectetur adipiscing elit sed do eiusmod tempor ")
	}
	return sb.String()
}

func TestAnalyze_PartitionsCatalog(t *testing.T) {
	catalog := []string{"go", "python", " go ", "rust", "", "kafka"}
	result := analysis.Analyze("built services in go and python", catalog)

	combined := append([]string{}, result.SkillsFound...)
	combined = append(combined, result.MissingSkills...)
	sort.Strings(combined)
	assert.Equal(t, []string{"go", "kafka", "python", "rust"}, combined)

	for _, skill := range result.SkillsFound {
		assert.NotContains(t, result.MissingSkills, skill)
	}
	assert.Equal(t, []string{"go", "python"}, result.SkillsFound)
	assert.Equal(t, []string{"kafka", "rust"}, result.MissingSkills)
}

func TestAnalyze_ScoreAlwaysInRange(t *testing.T) {
	cases := []struct {
		name    string
		text    string
		catalog []string
	}{
		{"empty text empty catalog", "", nil},
		{"empty text default catalog", "", analysis.DefaultCatalog()},
		{"minimal text", "go", []string{"go"}},
		{"rich text", filler(5000) + "\n- shipped features\n2021 grew revenue 40%", analysis.DefaultCatalog()},
		{"empty catalog rich text", filler(5000), []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := analysis.Analyze(tc.text, tc.catalog)
			assert.GreaterOrEqual(t, result.ATSScore, 0)
			assert.LessOrEqual(t, result.ATSScore, 100)
		})
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	text := "summary\nexperience at acme since 2019\n- built go services\nskills: go, sql"
	catalog := []string{"go", "sql", "python"}

	first := analysis.Analyze(text, catalog)
	second := analysis.Analyze(text, catalog)
	require.Equal(t, first, second)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON)
}

func TestAnalyze_WordBoundaries(t *testing.T) {
	result := analysis.Analyze("expert in javascript development", []string{"java"})
	assert.Empty(t, result.SkillsFound)
	assert.Equal(t, []string{"java"}, result.MissingSkills)

	result = analysis.Analyze("maintained the ci/cd pipeline", []string{"ci/cd"})
	assert.Equal(t, []string{"ci/cd"}, result.SkillsFound)
	assert.Empty(t, result.MissingSkills)
}

func TestAnalyze_MaxScore(t *testing.T) {
	catalog := []string{"go", "sql", "docker"}
	text := "Summary\nprofessional overview\n" +
		"Experience\nsoftware engineer, 2019 to present\n" +
		"- built go services backed by sql and docker\n" +
		"Education\nuniversity degree\n" +
		"Skills\ngo, sql, docker\n" +
		"Projects\nportfolio work\n" +
		filler(2600)

	result := analysis.Analyze(text, catalog)
	// 60 coverage + 25 structure + 15 formatting
	assert.Equal(t, 100, result.ATSScore)
	assert.Len(t, result.SkillsFound, 3)
	assert.Empty(t, result.MissingSkills)
}

func TestAnalyze_ZeroScore(t *testing.T) {
	text := "qqq www eee rrr ttt yyy"
	result := analysis.Analyze(text, []string{"cobol", "fortran"})
	assert.Equal(t, 0, result.ATSScore)
	assert.Empty(t, result.SkillsFound)
}

func TestAnalyze_SuggestionOrder(t *testing.T) {
	// No skills or experience section, no bullets, no numbers, five missing
	// skills, well under the detail threshold: all six rules fire, in order.
	text := filler(500)[:500]
	catalog := []string{"go", "sql", "docker", "kafka", "redis"}

	result := analysis.Analyze(text, catalog)
	require.Len(t, result.Suggestions, 6)
	assert.Contains(t, result.Suggestions[0], "skills section")
	assert.Contains(t, result.Suggestions[1], "experience section")
	assert.Contains(t, result.Suggestions[2], "bullet points")
	assert.Contains(t, result.Suggestions[3], "measurable results")
	assert.Contains(t, result.Suggestions[4], "docker, go, kafka, redis, sql")
	assert.Contains(t, result.Suggestions[5], "more detail")
}

func TestAnalyze_MissingSkillSuggestionCapped(t *testing.T) {
	catalog := []string{"c1", "c2", "c3", "c4", "c5", "c6", "c7", "c8", "c9", "c10"}
	result := analysis.Analyze(filler(500), catalog)

	var skillSuggestion string
	for _, s := range result.Suggestions {
		if strings.Contains(s, "incorporating") {
			skillSuggestion = s
		}
	}
	require.NotEmpty(t, skillSuggestion)
	assert.Contains(t, skillSuggestion, "c1, c10, c2, c3, c4, c5, c6, c7, ...")
	assert.NotContains(t, skillSuggestion, "c9")
}

func TestAnalyze_NoSuggestionsForStrongResume(t *testing.T) {
	text := "summary\nexperience since 2019\n- led the skills team\nskills\ngo\neducation\nuniversity\nprojects\n" + filler(1000)
	result := analysis.Analyze(text, []string{"go"})
	assert.Empty(t, result.Suggestions)
}

func TestDefaultCatalog_ReturnsCopy(t *testing.T) {
	first := analysis.DefaultCatalog()
	first[0] = "mutated"
	second := analysis.DefaultCatalog()
	assert.NotEqual(t, first[0], second[0])
}
