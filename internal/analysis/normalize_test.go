package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	got := normalize("Hello\tWorld\r\nSecond   Line\rThird")
	assert.Equal(t, "hello world\nsecond line\nthird", got)
}

func TestContainsToken(t *testing.T) {
	cases := []struct {
		text  string
		token string
		want  bool
	}{
		{"java developer", "java", true},
		{"javascript developer", "java", false},
		{"senior javascript", "javascript", true},
		{"ci/cd pipeline", "ci/cd", true},
		{"cicd pipeline", "ci/cd", false},
		{"node.js services", "node.js", true},
		{"uses go.", "go", true},
		{"go", "go", true},
		{"golang", "go", false},
		{"django, go, react", "go", true},
		{"", "go", false},
		{"anything", "", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, containsToken(tc.text, tc.token), "text=%q token=%q", tc.text, tc.token)
	}
}

func TestHasBulletLine(t *testing.T) {
	assert.True(t, hasBulletLine("intro\n- did a thing"))
	assert.True(t, hasBulletLine(" • shipped it"))
	assert.True(t, hasBulletLine("* another point"))
	assert.False(t, hasBulletLine("no bullets here"))
	assert.False(t, hasBulletLine("a dash - mid line"))
	assert.False(t, hasBulletLine("-\n*\n"))
}

func TestHasQuantifiableSignal(t *testing.T) {
	assert.True(t, hasQuantifiableSignal("joined in 2019"))
	assert.True(t, hasQuantifiableSignal("cut latency by 40%"))
	assert.True(t, hasQuantifiableSignal("managed 10+ engineers"))
	assert.False(t, hasQuantifiableSignal("no numbers at all"))
	assert.False(t, hasQuantifiableSignal("version 1.2 released"))
	assert.False(t, hasQuantifiableSignal("id 123456789"))
}

func TestDetectSections(t *testing.T) {
	found := detectSections("work history\neducation\ntech stack")
	assert.True(t, found[sectionExperience])
	assert.True(t, found[sectionEducation])
	assert.True(t, found[sectionSkills])
	assert.False(t, found[sectionSummary])
	assert.False(t, found[sectionProjects])
}
