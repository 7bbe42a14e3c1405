package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/arcade-hub/arcadehub/internal/branding"
	"github.com/arcade-hub/arcadehub/internal/game"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// templateSet is the embedded directory holding the game templates.
const templateSet = "game"

// ErrGameExists is returned when games/<id> is already present.
var ErrGameExists = errors.New("game directory already exists")

// ScaffoldData holds all template variables available to scaffold templates.
type ScaffoldData struct {
	ID       string // e.g., "snake"
	Title    string // e.g., "Snake"
	Category string // one of game.Categories
	SiteName string // e.g., "Arcade Hub"
	Date     string // creation date, YYYY-MM-DD
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string
	Warnings  []string
}

// NewScaffoldData creates a ScaffoldData stamped with the given time.
func NewScaffoldData(id, title, category string, now time.Time) *ScaffoldData {
	return &ScaffoldData{
		ID:       id,
		Title:    title,
		Category: category,
		SiteName: branding.DisplayName(),
		Date:     now.Format("2006-01-02"),
	}
}

// Generator writes game scaffolds below GamesDir.
type Generator struct {
	Fs        afero.Fs
	GamesDir  string
	ImagesDir string
	Logger    *zap.Logger
}

// NewGenerator returns a Generator rooted at the given directories.
func NewGenerator(fsys afero.Fs, gamesDir, imagesDir string, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{Fs: fsys, GamesDir: gamesDir, ImagesDir: imagesDir, Logger: logger}
}

type rendered struct {
	name    string
	content []byte
}

// Create validates data and writes games/<id>/ with one file per template.
// Nothing is written unless every check passes and every template renders.
// A write failure part way leaves already written files in place.
func (g *Generator) Create(data *ScaffoldData) (*Result, error) {
	desc := game.Descriptor{ID: data.ID, Title: data.Title, Category: game.Category(data.Category)}
	if err := desc.Validate(); err != nil {
		return nil, err
	}

	outputDir := filepath.Join(g.GamesDir, data.ID)
	exists, err := afero.Exists(g.Fs, outputDir)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", outputDir, err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", ErrGameExists, outputDir)
	}

	files, err := renderSet(templateSet, data)
	if err != nil {
		return nil, err
	}

	if err := g.Fs.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	result := &Result{OutputDir: outputDir}
	for _, f := range files {
		outPath := filepath.Join(outputDir, f.name)
		if err := afero.WriteFile(g.Fs, outPath, f.content, 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", outPath, err)
		}
		g.Logger.Debug("wrote scaffold file", zap.String("path", outPath), zap.Int("bytes", len(f.content)))
		result.Files = append(result.Files, f.name)
	}

	if err := g.Fs.MkdirAll(g.ImagesDir, 0755); err != nil {
		return nil, fmt.Errorf("creating images directory: %w", err)
	}

	thumb := filepath.Join(g.ImagesDir, data.ID+".jpg")
	if ok, _ := afero.Exists(g.Fs, thumb); !ok {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Don't forget to add a thumbnail image at %s", thumb))
	}

	return result, nil
}

// renderSet executes every template in the named set, in directory order.
func renderSet(setName string, data *ScaffoldData) ([]rendered, error) {
	templatesDir := path.Join("scaffolds", setName)

	entries, err := fs.ReadDir(scaffoldFS, templatesDir)
	if err != nil {
		return nil, fmt.Errorf("template set %q not found: %w", setName, err)
	}

	var out []rendered
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		tmplPath := path.Join(templatesDir, entry.Name())
		tmplBytes, err := fs.ReadFile(scaffoldFS, tmplPath)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", tmplPath, err)
		}

		tmpl, err := template.New(entry.Name()).Funcs(templateFuncs).Option("missingkey=error").Parse(string(tmplBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", entry.Name(), err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("executing template %s: %w", entry.Name(), err)
		}

		out = append(out, rendered{
			name:    strings.TrimSuffix(entry.Name(), ".tmpl"),
			content: buf.Bytes(),
		})
	}
	return out, nil
}
