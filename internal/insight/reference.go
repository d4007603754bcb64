package insight

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/zinojeng/inbody/internal/metric"
)

// LoadReferenceSections reads the reference corpus (a markdown/text file or
// a directory of them) and splits each document on its "## " headings.
// A missing path yields an empty corpus, not an error.
func LoadReferenceSections(path string) []string {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil
	}

	var paths []string
	if info.IsDir() {
		_ = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			switch strings.ToLower(filepath.Ext(p)) {
			case ".md", ".txt":
				paths = append(paths, p)
			}
			return nil
		})
		sort.Strings(paths)
	} else {
		paths = append(paths, path)
	}

	var sections []string
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		var current []string
		for _, line := range strings.Split(string(data), "\n") {
			if strings.HasPrefix(strings.TrimSpace(line), "## ") && len(current) > 0 {
				sections = append(sections, strings.TrimSpace(strings.Join(current, "\n")))
				current = []string{line}
			} else {
				current = append(current, line)
			}
		}
		if len(current) > 0 {
			sections = append(sections, strings.TrimSpace(strings.Join(current, "\n")))
		}
	}

	out := sections[:0]
	for _, s := range sections {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// scoringKeywords derives the search terms for passage selection from the
// readings this subject actually has.
func scoringKeywords(store *metric.Store) []string {
	has := func(id string) bool {
		_, ok := store.Number(metric.Variants(id)...)
		return ok
	}
	var terms []string
	if has("bmi") || has("weight_kg") {
		terms = append(terms, "BMI")
	}
	if has("pbf") {
		terms = append(terms, "體脂")
	}
	if has("vfa") {
		terms = append(terms, "內臟脂肪")
	}
	if has("ecw_tbw") {
		terms = append(terms, "ECW/TBW")
	}
	if has("phase_tr") {
		terms = append(terms, "相位角")
	}
	if has("lean_ra") {
		terms = append(terms, "肌少")
	}
	return terms
}

// SelectPassages scores each section by how many subject keywords it
// mentions and returns the top-k. Without keywords or hits it falls back to
// the corpus head so the prompt never loses its reference block entirely.
func SelectPassages(store *metric.Store, sections []string, topK int) []string {
	if len(sections) == 0 {
		return nil
	}
	if topK <= 0 {
		topK = 3
	}
	head := func() []string {
		if len(sections) < topK {
			return sections
		}
		return sections[:topK]
	}
	terms := scoringKeywords(store)
	if len(terms) == 0 {
		return head()
	}
	type scored struct {
		score   int
		section string
	}
	ranked := make([]scored, 0, len(sections))
	for _, section := range sections {
		lower := strings.ToLower(section)
		score := 0
		for _, term := range terms {
			if strings.Contains(lower, strings.ToLower(term)) {
				score++
			}
		}
		ranked = append(ranked, scored{score, section})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	var out []string
	for _, r := range ranked {
		if r.score <= 0 || len(out) == topK {
			break
		}
		out = append(out, r.section)
	}
	if len(out) == 0 {
		return head()
	}
	return out
}
