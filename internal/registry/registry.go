package registry

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/arcade-hub/arcadehub/internal/game"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Marker opens the games array in the registry script.
const Marker = "const GAMES = ["

// DefaultDifficulty is the difficulty given to every new entry.
const DefaultDifficulty = "medium"

// DefaultFeatures is the feature list given to every new entry.
var DefaultFeatures = []string{"high-scores"}

var (
	// ErrRegistryNotFound is returned when the registry script is missing.
	ErrRegistryNotFound = errors.New("registry file not found")
	// ErrMarkerNotFound is returned when the script has no GAMES array.
	ErrMarkerNotFound = errors.New("GAMES array not found")
	// ErrAlreadyRegistered is returned when the id is already in the array.
	ErrAlreadyRegistered = errors.New("game already registered")
)

//go:embed entry.js.tmpl
var entryTemplate string

var entryTmpl = template.Must(template.New("entry").Funcs(template.FuncMap{
	"quote": jsString,
	"list":  jsList,
}).Parse(entryTemplate))

// Patcher inserts game entries into a registry script.
type Patcher struct {
	Fs     afero.Fs
	Path   string
	Author string
	Now    func() time.Time
	Logger *zap.Logger
}

// Result describes a successful registration.
type Result struct {
	Path      string
	Offset    int    // byte offset the block was inserted at
	Block     string // the serialized entry
	Separator string // "," when the array already had entries
}

// Inserted is the number of bytes added to the file.
func (r *Result) Inserted() int {
	return len(r.Block) + len(r.Separator)
}

// NewPatcher returns a Patcher for the script at path.
func NewPatcher(fsys afero.Fs, path, author string, logger *zap.Logger) *Patcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Patcher{Fs: fsys, Path: path, Author: author, Now: time.Now, Logger: logger}
}

type entryData struct {
	ID          string
	Title       string
	Description string
	Category    string
	Tags        []string
	Thumbnail   string
	Path        string
	Difficulty  string
	Author      string
	DateAdded   string
	Features    []string
}

// Register adds desc as the first element of the GAMES array. The file is
// left untouched on every error except a failed write.
func (p *Patcher) Register(desc game.Descriptor) (*Result, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}

	src, perm, err := p.read()
	if err != nil {
		return nil, err
	}

	body, err := locate(src)
	if err != nil {
		return nil, fmt.Errorf("%w in %s", err, p.Path)
	}

	for _, id := range elementIDs(src, body) {
		if id == desc.ID {
			return nil, fmt.Errorf("%w: %s", ErrAlreadyRegistered, desc.ID)
		}
	}

	block, err := p.render(desc)
	if err != nil {
		return nil, err
	}

	result := &Result{Path: p.Path, Offset: body, Block: block}
	if strings.HasPrefix(strings.TrimSpace(src[body:]), "{") {
		result.Separator = ","
	}

	var out strings.Builder
	out.Grow(len(src) + result.Inserted())
	out.WriteString(src[:body])
	out.WriteString(result.Block)
	out.WriteString(result.Separator)
	out.WriteString(src[body:])

	if err := afero.WriteFile(p.Fs, p.Path, []byte(out.String()), perm); err != nil {
		return nil, fmt.Errorf("writing %s: %w", p.Path, err)
	}

	p.Logger.Debug("registered game",
		zap.String("id", desc.ID),
		zap.String("path", p.Path),
		zap.Int("offset", body),
		zap.Int("bytes", result.Inserted()),
		zap.Bool("separator", result.Separator != ""))

	return result, nil
}

// List returns the ids of the games in the array, in file order.
func (p *Patcher) List() ([]string, error) {
	src, _, err := p.read()
	if err != nil {
		return nil, err
	}
	body, err := locate(src)
	if err != nil {
		return nil, fmt.Errorf("%w in %s", err, p.Path)
	}
	return elementIDs(src, body), nil
}

func (p *Patcher) read() (string, os.FileMode, error) {
	info, err := p.Fs.Stat(p.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", 0, fmt.Errorf("%w: %s", ErrRegistryNotFound, p.Path)
		}
		return "", 0, fmt.Errorf("reading %s: %w", p.Path, err)
	}
	data, err := afero.ReadFile(p.Fs, p.Path)
	if err != nil {
		return "", 0, fmt.Errorf("reading %s: %w", p.Path, err)
	}
	return string(data), info.Mode().Perm(), nil
}

func (p *Patcher) render(desc game.Descriptor) (string, error) {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	tags := desc.Tags
	if tags == nil {
		tags = []string{}
	}

	data := entryData{
		ID:          desc.ID,
		Title:       desc.Title,
		Description: desc.Description,
		Category:    string(desc.Category),
		Tags:        tags,
		Thumbnail:   desc.ThumbnailPath(),
		Path:        desc.ContentPath(),
		Difficulty:  DefaultDifficulty,
		Author:      p.Author,
		DateAdded:   now().Format("2006-01-02"),
		Features:    DefaultFeatures,
	}

	var buf bytes.Buffer
	if err := entryTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering registry entry: %w", err)
	}
	return buf.String(), nil
}

// locate returns the offset just past the marker. The marker must appear
// literally; occurrences in comments or strings are ignored.
func locate(src string) (int, error) {
	if !strings.Contains(src, Marker) {
		return 0, ErrMarkerNotFound
	}
	idx := findInCode(src, Marker)
	if idx < 0 {
		return 0, ErrMarkerNotFound
	}
	return idx + len(Marker), nil
}

// elementIDs extracts the id property of each object in the array body.
// Objects without one are skipped.
func elementIDs(src string, body int) []string {
	var ids []string
	for _, el := range arrayElements(src, body) {
		if id, ok := objectID(src, el); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// jsString renders s as a double-quoted JavaScript string literal.
func jsString(s string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// jsList renders items as an array literal, e.g. ["a", "b"].
func jsList(items []string) (string, error) {
	quoted := make([]string, len(items))
	for i, it := range items {
		q, err := jsString(it)
		if err != nil {
			return "", err
		}
		quoted[i] = q
	}
	return "[" + strings.Join(quoted, ", ") + "]", nil
}
