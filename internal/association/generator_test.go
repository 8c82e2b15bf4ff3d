package association

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLookup struct {
	sets  []SynonymSet
	err   error
	panic bool
}

func (s stubLookup) Lookup(ctx context.Context, word string) ([]SynonymSet, error) {
	if s.panic {
		panic("thesaurus exploded")
	}
	return s.sets, s.err
}

func testGenerator(t *testing.T, lookup SynonymLookup) *Generator {
	t.Helper()
	return New(DefaultTables(), Options{Lookup: lookup, Picker: FixedPicker(0)})
}

func TestGenerateFigure(t *testing.T) {
	g := testGenerator(t, stubLookup{})
	ctx := context.Background()

	tests := []struct {
		term string
		want string
	}{
		{"lincoln", "a tall figure in a stovepipe hat freeing slaves"},
		{"President Lincoln", "a tall figure in a stovepipe hat freeing slaves"},
		{"ABRAHAM LINCOLN", "a tall figure in a stovepipe hat freeing slaves"},
		{"harrison", "a small man standing in his grandfather's shadow"},
		{"Franklin Roosevelt", "a man in a wheelchair speaking into an old radio microphone"},
	}
	for _, tt := range tests {
		a := g.Associate(ctx, tt.term)
		assert.Equal(t, tt.want, a.Phrase, "term %q", tt.term)
		assert.Equal(t, StageFigure, a.Stage, "term %q", tt.term)
	}
}

func TestFigureBeatsLexicon(t *testing.T) {
	src := DefaultSource()
	src.Figures = []FigureEntry{{Fragment: "free", Phrase: "a man named free"}}
	tables, err := NewTables(src)
	require.NoError(t, err)

	g := New(tables, Options{Lookup: stubLookup{}, Picker: FixedPicker(0)})
	assert.Equal(t, "a man named free", g.Generate(context.Background(), "Freedom"))
}

func TestFigureFirstMatchWins(t *testing.T) {
	src := DefaultSource()
	src.Figures = []FigureEntry{
		{Fragment: "john", Phrase: "first"},
		{Fragment: "johnson", Phrase: "second"},
	}
	g := New(MustTables(src), Options{Lookup: stubLookup{}})
	assert.Equal(t, "first", g.Generate(context.Background(), "Andrew Johnson"))
}

func TestGenerateLexicon(t *testing.T) {
	g := testGenerator(t, stubLookup{})
	ctx := context.Background()

	assert.Equal(t, "a bird soaring in open sky symbolizing Freedom", g.Generate(ctx, "Freedom"))
	assert.Equal(t, "a bird soaring in open sky symbolizing FREEDOM", g.Generate(ctx, "FREEDOM"))
	assert.Equal(t, "a bird soaring in open sky symbolizing freedom", g.Generate(ctx, "freedom"))
	assert.Equal(t, "a bird soaring in open sky symbolizing   Freedom  ", g.Generate(ctx, "  Freedom  "))

	a := g.Associate(ctx, "  Freedom  ")
	assert.Equal(t, StageLexicon, a.Stage)
	assert.Equal(t, "freedom", a.Match)
}

func TestGenerateConcreteByDistance(t *testing.T) {
	g := testGenerator(t, stubLookup{})

	a := g.Associate(context.Background(), "elefant")
	assert.Equal(t, StageConcrete, a.Stage)
	assert.Equal(t, "elephant", a.Match)
	assert.InDelta(t, 0.75, a.Score, 1e-9)
	assert.Equal(t, "a majestic elephant representing elefant", a.Phrase)
}

func TestGenerateConcreteBySynonym(t *testing.T) {
	lookup := stubLookup{sets: []SynonymSet{{Synonyms: []string{"ocean", "sea"}}}}
	g := testGenerator(t, lookup)

	a := g.Associate(context.Background(), "Sea")
	assert.Equal(t, StageConcrete, a.Stage)
	assert.Equal(t, "ocean", a.Match)
	assert.Equal(t, "a vast ocean representing Sea", a.Phrase)
}

func TestGenerateConcreteUsesPicker(t *testing.T) {
	var gotN int
	picker := PickerFunc(func(n int) int {
		gotN = n
		return n - 1
	})
	g := New(DefaultTables(), Options{Lookup: stubLookup{}, Picker: picker})

	assert.Equal(t, "a curious elephant representing elefant", g.Generate(context.Background(), "elefant"))
	assert.Equal(t, 6, gotN)
}

func TestGenerateMetaphor(t *testing.T) {
	tables := MustTables(TableSource{
		Categories: []ConcreteCategory{{Name: "animals", Words: []string{"zzzz"}, Adjectives: []string{"big"}}},
		Metaphors:  []MetaphorEntry{{Pattern: "growth", Visual: "a seedling becoming a tree"}},
	})
	g := New(tables, Options{Lookup: stubLookup{}, Picker: FixedPicker(0)})

	a := g.Associate(context.Background(), "growing")
	assert.Equal(t, StageMetaphor, a.Stage)
	assert.Equal(t, "a seedling becoming a tree symbolizing growing", a.Phrase)
	assert.InDelta(t, 4.0/7.0, a.Score, 1e-9)
}

func TestThresholdIsStrict(t *testing.T) {
	build := func(word string) *Generator {
		tables := MustTables(TableSource{
			Categories: []ConcreteCategory{{Name: "objects", Words: []string{word}, Adjectives: []string{"odd"}}},
			Metaphors:  []MetaphorEntry{{Pattern: "qqqqqqqq", Visual: "nothing"}},
		})
		return New(tables, Options{Lookup: stubLookup{}, Picker: FixedPicker(0)})
	}
	ctx := context.Background()

	// 1 shared rune out of 5: similarity exactly 0.2
	require.Equal(t, 0.2, StringSimilarity("abcde", "axxxx"))
	assert.Equal(t, `a symbolic representation of "abcde"`, build("axxxx").Generate(ctx, "abcde"))

	// 1 shared rune out of 4: 0.25
	assert.Equal(t, "a odd axxx representing abcd", build("axxx").Generate(ctx, "abcd"))

	assert.False(t, confident(0.2))
	assert.True(t, confident(0.2001))
}

func TestTerminalFallback(t *testing.T) {
	g := testGenerator(t, stubLookup{})
	term := uuid.NewString()

	a := g.Associate(context.Background(), term)
	assert.Equal(t, StageFallback, a.Stage)
	assert.Equal(t, `a symbolic representation of "`+term+`"`, a.Phrase)
}

func TestPanickingLookupUsesErrorPhrase(t *testing.T) {
	g := testGenerator(t, stubLookup{panic: true})
	term := uuid.NewString()

	got := g.Generate(context.Background(), term)
	assert.Equal(t, `a visual representation of "`+term+`"`, got)
	assert.NotEqual(t, `a symbolic representation of "`+term+`"`, got)
}

func TestFailingLookupDegradesToDistance(t *testing.T) {
	g := testGenerator(t, stubLookup{err: errors.New("thesaurus offline")})

	a := g.Associate(context.Background(), "elefant")
	assert.Equal(t, StageConcrete, a.Stage)
	assert.Equal(t, "a majestic elephant representing elefant", a.Phrase)
}

func TestNilLookup(t *testing.T) {
	g := New(nil, Options{Picker: FixedPicker(0)})
	assert.Equal(t, "a majestic elephant representing elefant", g.Generate(context.Background(), "elefant"))
}

func TestGenerateIsTotal(t *testing.T) {
	g := testGenerator(t, stubLookup{})
	ctx := context.Background()

	inputs := []string{
		"",
		"   ",
		"!!!###",
		"12345",
		strings.Repeat("x", 5000),
		"lincoln freedom",
		"日本語",
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() {
			assert.NotEmpty(t, g.Generate(ctx, in), "input %q", in)
		})
	}
}

func TestGenerateIdempotent(t *testing.T) {
	g := testGenerator(t, stubLookup{})
	ctx := context.Background()

	for _, term := range []string{"elefant", "Freedom", "lincoln", "growing", uuid.NewString()} {
		first := g.Generate(ctx, term)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, g.Generate(ctx, term))
		}
	}
}

func TestSeededPickerReproducible(t *testing.T) {
	ctx := context.Background()
	a := New(nil, Options{Lookup: stubLookup{}, Picker: NewRandomPicker(42)})
	b := New(nil, Options{Lookup: stubLookup{}, Picker: NewRandomPicker(42)})

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Generate(ctx, "elefant"), b.Generate(ctx, "elefant"))
	}
}

func TestGenerateConcurrent(t *testing.T) {
	g := New(nil, Options{Lookup: stubLookup{}, Picker: NewRandomPicker(7)})
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, term := range []string{"elefant", "Freedom", "lincoln", "castel"} {
				assert.NotEmpty(t, g.Generate(ctx, term))
			}
		}()
	}
	wg.Wait()
}
