package domain

// AnalysisResult is the terminal output of one resume analysis. It is created
// once per request and never mutated afterwards.
type AnalysisResult struct {
	ATSScore      int      `json:"atsScore"`
	SkillsFound   []string `json:"skillsFound"`
	MissingSkills []string `json:"missingSkills"`
	Suggestions   []string `json:"suggestions"`
}

// FileKind identifies a supported upload format.
type FileKind string

const (
	FileKindPDF   FileKind = "pdf"
	FileKindPlain FileKind = "txt"
)

// AllowedContentTypes maps declared media types to file kinds.
var AllowedContentTypes = map[string]FileKind{
	"application/pdf": FileKindPDF,
	"text/plain":      FileKindPlain,
}

// AllowedExtensions maps lowercased filename extensions (without the dot)
// to file kinds.
var AllowedExtensions = map[string]FileKind{
	"pdf": FileKindPDF,
	"txt": FileKindPlain,
}
