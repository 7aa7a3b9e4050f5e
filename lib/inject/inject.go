// Package inject inserts rendered script tags into HTML documents and
// serves the instrumented result.
package inject

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/scriptorch/orch"
)

var reBodyClose = regexp.MustCompile(`(?i)</body>`)

// Into returns the document with each entry's script tag inserted right
// before the body close tag. Documents without one get the tags appended.
// Entries that render to nothing are skipped.
func Into(doc string, entries ...orch.ScriptEntry) string {
	tags := []string{}
	for _, e := range entries {
		if tag := e.Render(); tag != "" {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return doc
	}

	block := strings.Join(tags, "\n")

	// match case-insensitively on the original bytes, lowering the document
	// first would shift offsets for runes whose case pair differs in length
	locs := reBodyClose.FindAllStringIndex(doc, -1)
	if locs == nil {
		return doc + block
	}
	i := locs[len(locs)-1][0]
	return doc[:i] + block + doc[i:]
}

// Handler serves the document with the set's current entries injected. The
// set is read per request, entries added later show up on the next load.
func Handler(doc string, set *orch.Set) gin.HandlerFunc {
	return func(c *gin.Context) {
		out := Into(doc, set.List()...)
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(out))
	}
}
