package report

import "regexp"

// CitationPolicy controls what happens to bracketed reference markers in the
// assembled document. Generated narratives tend to cite a reference pack the
// reader never receives, so the default removes them.
type CitationPolicy string

const (
	CitationStrip CitationPolicy = "strip"
	CitationKeep  CitationPolicy = "keep"
)

var (
	refLabelASCII     = regexp.MustCompile(`\[\s*參考\s*([^\]]+)\]`)
	refLabelFullwidth = regexp.MustCompile(`［\s*參考\s*([^］]+)］`)
	refLabelCorner    = regexp.MustCompile(`【\s*參考[^】]*】`)
	citationASCII     = regexp.MustCompile(`\[[^\]]*\d+[^\]]*\]`)
	citationFullwidth = regexp.MustCompile(`［[^］]*\d+[^］]*］`)
	citationPreamble  = regexp.MustCompile(`文中引用之數字編號[^\n]+\n?`)
	annotationNote    = regexp.MustCompile(`內文已以「」標註[：:]*\s*`)
	seeFullwidth      = regexp.MustCompile(`（\s*見\s*）`)
	seeASCII          = regexp.MustCompile(`\(\s*見\s*\)`)
	seeTrailing       = regexp.MustCompile(`(?m)見\s*$`)
	emptyParenASCII   = regexp.MustCompile(`\(\s*\)`)
	emptyParenFull    = regexp.MustCompile(`（\s*）`)
	// Collapses runs of horizontal whitespace left behind by removals while
	// keeping line structure intact.
	doubledSpaces = regexp.MustCompile(`[^\S\n]{2,}`)
)

// CleanCitations applies the citation policy to an assembled document.
// Under CitationKeep the text passes through untouched.
func CleanCitations(text string, policy CitationPolicy) string {
	if policy == CitationKeep {
		return text
	}
	text = refLabelASCII.ReplaceAllString(text, "")
	text = refLabelFullwidth.ReplaceAllString(text, "")
	text = refLabelCorner.ReplaceAllString(text, "")
	text = citationPreamble.ReplaceAllString(text, "")
	text = citationASCII.ReplaceAllString(text, "")
	text = citationFullwidth.ReplaceAllString(text, "")
	text = annotationNote.ReplaceAllString(text, "")
	text = seeFullwidth.ReplaceAllString(text, "")
	text = seeASCII.ReplaceAllString(text, "")
	text = seeTrailing.ReplaceAllString(text, "")
	text = emptyParenASCII.ReplaceAllString(text, "")
	text = emptyParenFull.ReplaceAllString(text, "")
	text = doubledSpaces.ReplaceAllString(text, " ")
	return text
}
