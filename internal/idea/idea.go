package idea

import (
	"bytes"
	_ "embed"
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"text/template"
	"time"

	"github.com/spf13/afero"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Concept is one entry of the built-in concept table.
type Concept struct {
	Title       string   `yaml:"title"`
	Category    string   `yaml:"category"`
	Description string   `yaml:"description"`
	Mechanics   []string `yaml:"mechanics"`
	Difficulty  string   `yaml:"difficulty"`
	Tags        []string `yaml:"tags"`
}

// Complexities maps the --complexity values to concept difficulties.
var Complexities = map[string]string{
	"simple":  "easy",
	"medium":  "medium",
	"complex": "hard",
}

// ProposalExt is appended to proposal file names that lack it.
const ProposalExt = ".md"

//go:embed concepts.yaml
var conceptsYAML []byte

//go:embed proposal.md.tmpl
var proposalTemplate string

var (
	loadOnce sync.Once
	concepts []Concept
	loadErr  error
)

var proposalTmpl = template.Must(template.New("proposal").Funcs(template.FuncMap{
	"title": cases.Title(language.English).String,
	"join":  strings.Join,
}).Parse(proposalTemplate))

// Concepts returns a copy of the built-in concept table.
func Concepts() ([]Concept, error) {
	loadOnce.Do(func() {
		concepts, loadErr = parseConcepts(conceptsYAML)
	})
	if loadErr != nil {
		return nil, loadErr
	}
	return slices.Clone(concepts), nil
}

func parseConcepts(data []byte) ([]Concept, error) {
	issues, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating concept table: %w", err)
	}
	if len(issues) > 0 {
		msgs := make([]string, len(issues))
		for i, issue := range issues {
			msgs[i] = issue.String()
		}
		return nil, fmt.Errorf("invalid concept table:\n  %s", strings.Join(msgs, "\n  "))
	}

	var out []Concept
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parsing concept table: %w", err)
	}
	return out, nil
}

// Generate picks a concept matching category and complexity. Empty filters
// and unknown complexities match everything. When nothing matches, the pick
// is made from the whole table instead.
func Generate(category, complexity string, rnd *rand.Rand) (Concept, error) {
	all, err := Concepts()
	if err != nil {
		return Concept{}, err
	}
	return pick(filter(all, category, complexity), all, rnd), nil
}

func filter(all []Concept, category, complexity string) []Concept {
	out := all
	if category != "" {
		out = slices.DeleteFunc(slices.Clone(out), func(c Concept) bool {
			return c.Category != category
		})
	}
	if difficulty, ok := Complexities[complexity]; ok {
		out = slices.DeleteFunc(slices.Clone(out), func(c Concept) bool {
			return c.Difficulty != difficulty
		})
	}
	return out
}

func pick(candidates, all []Concept, rnd *rand.Rand) Concept {
	if len(candidates) == 0 {
		candidates = all
	}
	if rnd == nil {
		return candidates[rand.IntN(len(candidates))]
	}
	return candidates[rnd.IntN(len(candidates))]
}

// Format renders c as a markdown proposal.
func Format(c Concept) (string, error) {
	var buf bytes.Buffer
	if err := proposalTmpl.Execute(&buf, c); err != nil {
		return "", fmt.Errorf("rendering proposal: %w", err)
	}
	return buf.String(), nil
}

// ProposalName returns the file name a proposal is saved under. An empty
// name becomes game_proposal_<timestamp>.md.
func ProposalName(name string, now time.Time) string {
	if name == "" {
		name = "game_proposal_" + now.Format("20060102_150405")
	}
	if !strings.HasSuffix(name, ProposalExt) {
		name += ProposalExt
	}
	return name
}

// Save writes proposal into dir, creating dir if needed, and returns the
// path written.
func Save(fsys afero.Fs, dir, name, proposal string, now time.Time) (string, error) {
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating proposals directory: %w", err)
	}

	path := filepath.Join(dir, ProposalName(name, now))
	if err := afero.WriteFile(fsys, path, []byte(proposal), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
