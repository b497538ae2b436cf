package analysis

// Resume structure sections detected via label synonyms. A section counts as
// present if any one synonym word-boundary-matches the normalized text.
const (
	sectionSummary    = "summary"
	sectionExperience = "experience"
	sectionEducation  = "education"
	sectionSkills     = "skills"
	sectionProjects   = "projects"
)

// sectionOrder fixes iteration order so scoring is reproducible.
var sectionOrder = []string{
	sectionSummary,
	sectionExperience,
	sectionEducation,
	sectionSkills,
	sectionProjects,
}

var sectionSynonyms = map[string][]string{
	sectionSummary:    {"summary", "objective", "profile", "about me"},
	sectionExperience: {"experience", "employment", "work history", "career"},
	sectionEducation:  {"education", "academic", "degree", "university"},
	sectionSkills:     {"skills", "technologies", "competencies", "tech stack"},
	sectionProjects:   {"projects", "portfolio", "open source"},
}

var sectionWeights = map[string]int{
	sectionSummary:    5,
	sectionExperience: 10,
	sectionEducation:  5,
	sectionSkills:     5,
	sectionProjects:   5,
}

// detectSections returns the set of sections whose synonyms appear in the
// normalized text.
func detectSections(normalized string) map[string]bool {
	found := make(map[string]bool, len(sectionOrder))
	for _, section := range sectionOrder {
		for _, synonym := range sectionSynonyms[section] {
			if containsToken(normalized, synonym) {
				found[section] = true
				break
			}
		}
	}
	return found
}
