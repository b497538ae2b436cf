package analysis

// defaultCatalog is the built-in target skill list used when a request does
// not override it. Order is preserved for coverage math; output sets are
// sorted independently.
var defaultCatalog = []string{
	"python",
	"javascript",
	"typescript",
	"java",
	"go",
	"sql",
	"react",
	"node.js",
	"html",
	"css",
	"git",
	"docker",
	"kubernetes",
	"aws",
	"linux",
	"rest",
	"graphql",
	"ci/cd",
	"agile",
	"communication",
}

// DefaultCatalog returns a copy of the built-in skill catalog.
func DefaultCatalog() []string {
	out := make([]string, len(defaultCatalog))
	copy(out, defaultCatalog)
	return out
}
