package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lazypower/loci/internal/association"
	"github.com/lazypower/loci/internal/config"
)

// run executes the root command against an isolated database.
func run(t *testing.T, dir string, args ...string) string {
	t.Helper()
	t.Setenv("LOCI_DB", filepath.Join(dir, "loci.db"))
	t.Setenv("LOCI_THESAURUS", "sqlite")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(dir, "missing.yaml")}, args...))
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("loci %s: %v\n%s", strings.Join(args, " "), err, out.String())
	}
	return out.String()
}

func TestVersionCommand(t *testing.T) {
	out := run(t, t.TempDir(), "version")
	if !strings.HasPrefix(out, "loci "+Version) {
		t.Errorf("version output = %q", out)
	}
}

func TestAssociateCommand(t *testing.T) {
	out := run(t, t.TempDir(), "associate", "--json=false", "Lincoln", "freedom")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), out)
	}
	if lines[0] != "a tall figure in a stovepipe hat freeing slaves" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "a bird soaring in open sky symbolizing freedom" {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestAssociateJSON(t *testing.T) {
	out := run(t, t.TempDir(), "associate", "--json", "freedom")
	if !strings.Contains(out, `"stage":"lexicon"`) {
		t.Errorf("json output missing stage: %q", out)
	}
}

func TestSimilarCommand(t *testing.T) {
	out := run(t, t.TempDir(), "similar", "--pool", "concrete", "-n", "1", "elefant")
	fields := strings.Fields(out)
	if len(fields) != 2 || fields[0] != "elephant" || fields[1] != "0.750" {
		t.Errorf("similar output = %q", out)
	}
}

func TestThesaurusImportAndLookup(t *testing.T) {
	dir := t.TempDir()
	dump := filepath.Join(dir, "wordnet.json")
	if err := os.WriteFile(dump, []byte(`{"synsets":[["Sea","ocean"],["ocean","main"]]}`), 0644); err != nil {
		t.Fatal(err)
	}

	out := run(t, dir, "thesaurus", "import", dump)
	if !strings.Contains(out, "added 2") {
		t.Errorf("import output = %q", out)
	}

	out = run(t, dir, "thesaurus", "lookup", "OCEAN")
	if !strings.Contains(out, "1. sea, ocean") || !strings.Contains(out, "2. ocean, main") {
		t.Errorf("lookup output = %q", out)
	}

	// The imported synonyms now steer generation.
	out = run(t, dir, "associate", "--json=false", "main")
	if !strings.HasSuffix(strings.TrimSpace(out), "ocean representing main") {
		t.Errorf("associate output = %q", out)
	}
}

func TestServerOptionsFromConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LOCI_DB", filepath.Join(dir, "loci.db"))
	t.Setenv("LOCI_THESAURUS", "none")
	cfgFile := filepath.Join(dir, "config.yaml")
	body := "server:\n  concurrency: 3\n  batch_limit: 7\n  rate_per_minute: 0\n"
	if err := os.WriteFile(cfgFile, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	configPath = cfgFile
	t.Cleanup(func() { configPath = "" })

	a, err := newApp()
	if err != nil {
		t.Fatalf("newApp: %v", err)
	}
	defer a.Close()

	opts := a.serverOptions()
	if opts.Concurrency != 3 {
		t.Errorf("concurrency = %d, want 3", opts.Concurrency)
	}
	if opts.BatchLimit != 7 {
		t.Errorf("batch limit = %d, want 7", opts.BatchLimit)
	}
	if opts.Lookup != nil {
		t.Errorf("lookup = %T, want nil for provider none", opts.Lookup)
	}
}

func TestThresholdsAgree(t *testing.T) {
	if config.SimilarityThreshold != association.Threshold {
		t.Errorf("config threshold %v != generator threshold %v", config.SimilarityThreshold, association.Threshold)
	}
}
