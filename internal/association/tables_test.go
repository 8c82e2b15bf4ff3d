package association

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTablesValid(t *testing.T) {
	tables, err := NewTables(DefaultSource())
	require.NoError(t, err)

	assert.Equal(t, []string{"animals", "landmarks", "nature", "objects", "fantasy", "phenomena"}, tables.Categories())
	assert.NotEmpty(t, tables.ConcretePool())
	assert.NotEmpty(t, tables.MetaphorPatterns())

	for _, w := range tables.ConcretePool() {
		cat, ok := tables.CategoryOf(w)
		require.True(t, ok, "word %q has no category", w)
		assert.NotEmpty(t, cat.Adjectives)
	}
}

func TestDuplicateFiguresCollapse(t *testing.T) {
	tables := DefaultTables()
	figures := tables.Figures()

	var harrison, roosevelt []FigureEntry
	harrisonPos, tylerPos := -1, -1
	for i, f := range figures {
		switch f.Fragment {
		case "harrison":
			harrison = append(harrison, f)
			harrisonPos = i
		case "roosevelt":
			roosevelt = append(roosevelt, f)
		case "tyler":
			tylerPos = i
		}
	}

	require.Len(t, harrison, 1)
	require.Len(t, roosevelt, 1)
	assert.Equal(t, "a small man standing in his grandfather's shadow", harrison[0].Phrase)
	assert.Equal(t, "a man in a wheelchair speaking into an old radio microphone", roosevelt[0].Phrase)
	// the collapsed entry keeps the slot of its first definition
	assert.Less(t, harrisonPos, tylerPos)
}

func TestNewTablesRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TableSource)
		errMsg string
	}{
		{
			name: "word in two categories",
			mutate: func(s *TableSource) {
				s.Categories[1].Words = append(s.Categories[1].Words, "Elephant")
			},
			errMsg: `word "elephant" in both`,
		},
		{
			name: "category without adjectives",
			mutate: func(s *TableSource) {
				s.Categories[0].Adjectives = nil
			},
			errMsg: "has no adjectives",
		},
		{
			name: "lexicon keys colliding after normalization",
			mutate: func(s *TableSource) {
				s.Lexicon[" Freedom "] = "something else"
			},
			errMsg: `lexicon key "freedom" defined more than once`,
		},
		{
			name: "duplicate metaphor pattern",
			mutate: func(s *TableSource) {
				s.Metaphors = append(s.Metaphors, MetaphorEntry{Pattern: "Growth", Visual: "x"})
			},
			errMsg: `metaphor pattern "growth"`,
		},
		{
			name: "no categories",
			mutate: func(s *TableSource) {
				s.Categories = nil
			},
			errMsg: "no concrete word categories",
		},
		{
			name: "empty figure fragment",
			mutate: func(s *TableSource) {
				s.Figures = append(s.Figures, FigureEntry{Phrase: "nobody"})
			},
			errMsg: "empty fragment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := DefaultSource()
			tt.mutate(&src)
			_, err := NewTables(src)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLexiconLookupNormalizes(t *testing.T) {
	tables := DefaultTables()
	for _, term := range []string{"freedom", "FREEDOM", "  Freedom  "} {
		p, ok := tables.Lexicon(term)
		assert.True(t, ok, term)
		assert.Equal(t, "a bird soaring in open sky", p)
	}
}

func TestReadTablesOverridesSections(t *testing.T) {
	doc := `
lexicon:
  Palace: a mansion made of memories
figures:
  - fragment: Ada
    phrase: a woman programming a loom
`
	tables, err := ReadTables(strings.NewReader(doc))
	require.NoError(t, err)

	p, ok := tables.Lexicon("palace")
	assert.True(t, ok)
	assert.Equal(t, "a mansion made of memories", p)

	_, ok = tables.Lexicon("freedom")
	assert.False(t, ok, "lexicon section replaces the built-in one")

	assert.Equal(t, []FigureEntry{{Fragment: "ada", Phrase: "a woman programming a loom"}}, tables.Figures())
	assert.Equal(t, DefaultTables().ConcretePool(), tables.ConcretePool())
}

func TestReadTablesEmptyDocument(t *testing.T) {
	tables, err := ReadTables(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultTables().Figures(), tables.Figures())
}

func TestReadTablesUnknownField(t *testing.T) {
	_, err := ReadTables(strings.NewReader("colours: [red]\n"))
	assert.Error(t, err)
}
