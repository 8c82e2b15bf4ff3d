package association

import (
	"fmt"
	"strings"
)

// FigureEntry maps a historical-figure name fragment to a visual phrase.
type FigureEntry struct {
	Fragment string `yaml:"fragment" json:"fragment"`
	Phrase   string `yaml:"phrase" json:"phrase"`
}

// ConcreteCategory is a bucket of easily visualized nouns plus the
// adjectives that suit them.
type ConcreteCategory struct {
	Name       string   `yaml:"name" json:"name"`
	Words      []string `yaml:"words" json:"words"`
	Adjectives []string `yaml:"adjectives" json:"adjectives"`
}

// MetaphorEntry pairs an abstract concept pattern with a visual description.
type MetaphorEntry struct {
	Pattern string `yaml:"pattern" json:"pattern"`
	Visual  string `yaml:"visual" json:"visual"`
}

// Tables is the read-only reference data behind a Generator.
// Build it with NewTables; never mutate it afterwards.
type Tables struct {
	figures    []FigureEntry
	lexicon    map[string]string
	categories []ConcreteCategory
	metaphors  []MetaphorEntry

	// derived
	pool       []string
	categoryOf map[string]int
	patterns   []string
	visualOf   map[string]string
}

// TableSource is the raw, unvalidated shape of the reference data.
type TableSource struct {
	Figures    []FigureEntry      `yaml:"figures"`
	Lexicon    map[string]string  `yaml:"lexicon"`
	Categories []ConcreteCategory `yaml:"categories"`
	Metaphors  []MetaphorEntry    `yaml:"metaphors"`
}

// NewTables validates src and builds the immutable lookup structures.
//
// Figure fragments that appear more than once collapse into a single entry:
// the last phrase wins and the entry keeps the position where the fragment
// first appeared.
func NewTables(src TableSource) (*Tables, error) {
	t := &Tables{
		lexicon:    make(map[string]string, len(src.Lexicon)),
		categoryOf: make(map[string]int),
		visualOf:   make(map[string]string, len(src.Metaphors)),
	}

	t.figures = collapseFigures(src.Figures)
	for _, f := range t.figures {
		if f.Fragment == "" {
			return nil, fmt.Errorf("figure with empty fragment (phrase %q)", f.Phrase)
		}
		if f.Phrase == "" {
			return nil, fmt.Errorf("figure %q has empty phrase", f.Fragment)
		}
	}

	for k, v := range src.Lexicon {
		key := normalizeTerm(k)
		if key == "" {
			return nil, fmt.Errorf("lexicon key %q is empty after normalization", k)
		}
		if _, dup := t.lexicon[key]; dup {
			return nil, fmt.Errorf("lexicon key %q defined more than once", key)
		}
		t.lexicon[key] = v
	}

	if len(src.Categories) == 0 {
		return nil, fmt.Errorf("no concrete word categories")
	}
	for i, c := range src.Categories {
		if c.Name == "" {
			return nil, fmt.Errorf("category %d has no name", i)
		}
		if len(c.Adjectives) == 0 {
			return nil, fmt.Errorf("category %q has no adjectives", c.Name)
		}
		words := make([]string, 0, len(c.Words))
		for _, w := range c.Words {
			w = normalizeTerm(w)
			if w == "" {
				continue
			}
			if prev, dup := t.categoryOf[w]; dup {
				return nil, fmt.Errorf("word %q in both %q and %q", w, src.Categories[prev].Name, c.Name)
			}
			t.categoryOf[w] = i
			words = append(words, w)
			t.pool = append(t.pool, w)
		}
		t.categories = append(t.categories, ConcreteCategory{
			Name:       c.Name,
			Words:      words,
			Adjectives: append([]string(nil), c.Adjectives...),
		})
	}

	for _, m := range src.Metaphors {
		p := normalizeTerm(m.Pattern)
		if p == "" {
			return nil, fmt.Errorf("metaphor with empty pattern (visual %q)", m.Visual)
		}
		if _, dup := t.visualOf[p]; dup {
			return nil, fmt.Errorf("metaphor pattern %q defined more than once", p)
		}
		t.visualOf[p] = m.Visual
		t.patterns = append(t.patterns, p)
		t.metaphors = append(t.metaphors, MetaphorEntry{Pattern: p, Visual: m.Visual})
	}

	return t, nil
}

func collapseFigures(in []FigureEntry) []FigureEntry {
	out := make([]FigureEntry, 0, len(in))
	pos := make(map[string]int, len(in))
	for _, f := range in {
		frag := strings.ToLower(f.Fragment)
		if i, ok := pos[frag]; ok {
			out[i].Phrase = f.Phrase
			continue
		}
		pos[frag] = len(out)
		out = append(out, FigureEntry{Fragment: frag, Phrase: f.Phrase})
	}
	return out
}

// MustTables is NewTables for package-level data known to be valid.
func MustTables(src TableSource) *Tables {
	t, err := NewTables(src)
	if err != nil {
		panic(err)
	}
	return t
}

// matchFigure returns the phrase of the first figure whose fragment occurs
// in the lowercased term.
func (t *Tables) matchFigure(lowered string) (string, bool) {
	for _, f := range t.figures {
		if strings.Contains(lowered, f.Fragment) {
			return f.Phrase, true
		}
	}
	return "", false
}

// Lexicon returns the phrase for an exact normalized term.
func (t *Tables) Lexicon(term string) (string, bool) {
	p, ok := t.lexicon[normalizeTerm(term)]
	return p, ok
}

// ConcretePool returns every concrete word across all categories, in
// category order.
func (t *Tables) ConcretePool() []string {
	return append([]string(nil), t.pool...)
}

// MetaphorPatterns returns the metaphor patterns in table order.
func (t *Tables) MetaphorPatterns() []string {
	return append([]string(nil), t.patterns...)
}

// CategoryOf returns the category a concrete word belongs to.
func (t *Tables) CategoryOf(word string) (ConcreteCategory, bool) {
	i, ok := t.categoryOf[word]
	if !ok {
		return ConcreteCategory{}, false
	}
	return t.categories[i], true
}

// Metaphor returns the visual for a metaphor pattern.
func (t *Tables) Metaphor(pattern string) (string, bool) {
	v, ok := t.visualOf[pattern]
	return v, ok
}

// Figures returns a copy of the ordered figure table.
func (t *Tables) Figures() []FigureEntry {
	return append([]FigureEntry(nil), t.figures...)
}

// Categories returns the category names in order.
func (t *Tables) Categories() []string {
	names := make([]string, len(t.categories))
	for i, c := range t.categories {
		names[i] = c.Name
	}
	return names
}

func normalizeTerm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
