package game

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Category is one of the fixed Arcade Hub sections.
type Category string

// Supported categories.
const (
	CategoryArcade      Category = "arcade"
	CategoryPuzzle      Category = "puzzle"
	CategoryStrategy    Category = "strategy"
	CategoryEducational Category = "educational"
)

// Categories lists every valid category in display order.
var Categories = []Category{CategoryArcade, CategoryPuzzle, CategoryStrategy, CategoryEducational}

var (
	// ErrInvalidCategory is returned for a category outside Categories.
	ErrInvalidCategory = errors.New("invalid category")
	// ErrMissingField is returned when a required descriptor field is empty.
	ErrMissingField = errors.New("missing required field")
	// ErrInvalidID is returned when an id is not a filesystem-safe token.
	ErrInvalidID = errors.New("invalid game id")
)

var idPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// ParseCategory returns the Category named by s.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w %q: must be one of %s", ErrInvalidCategory, s, CategoryList())
}

// CategoryList returns the valid categories joined for messages and help text.
func CategoryList() string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// ValidateID checks that id is non-empty and usable as a single directory name.
func ValidateID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: game_id", ErrMissingField)
	}
	if !idPattern.MatchString(id) {
		return fmt.Errorf("%w %q: must match pattern [a-z0-9][a-z0-9_-]*", ErrInvalidID, id)
	}
	return nil
}

// Descriptor describes one game as it is scaffolded and registered.
type Descriptor struct {
	ID          string
	Title       string
	Description string
	Category    Category
	Tags        []string
}

// Validate checks the fields required by both create and register.
// Description is optional.
func (d *Descriptor) Validate() error {
	if err := ValidateID(d.ID); err != nil {
		return err
	}
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("%w: title", ErrMissingField)
	}
	if _, err := ParseCategory(string(d.Category)); err != nil {
		return err
	}
	return nil
}

// ThumbnailPath is the site-absolute path of the game's card image.
func (d *Descriptor) ThumbnailPath() string {
	return "/images/" + d.ID + ".jpg"
}

// ContentPath is the site-absolute path of the game's directory.
func (d *Descriptor) ContentPath() string {
	return "/games/" + d.ID + "/"
}

// NormalizeTags flattens comma-separated values and drops blanks while
// keeping the original order.
func NormalizeTags(raw []string) []string {
	tags := []string{}
	for _, r := range raw {
		for _, t := range strings.Split(r, ",") {
			t = strings.TrimSpace(t)
			if t != "" {
				tags = append(tags, t)
			}
		}
	}
	return tags
}
