package idea

import (
	"math/rand/v2"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func TestConceptsTable(t *testing.T) {
	all, err := Concepts()
	require.NoError(t, err)
	require.Len(t, all, 5)

	titles := make([]string, len(all))
	for i, c := range all {
		titles[i] = c.Title
	}
	assert.Equal(t, []string{"Color Matcher", "Space Defender", "Word Wizard", "Resource Empire", "Rhythm Runner"}, titles)

	// Callers get their own copy.
	all[0].Title = "changed"
	again, err := Concepts()
	require.NoError(t, err)
	assert.Equal(t, "Color Matcher", again[0].Title)
}

func TestGenerateByCategory(t *testing.T) {
	for _, category := range []string{"puzzle", "arcade", "educational", "strategy"} {
		t.Run(category, func(t *testing.T) {
			for seed := uint64(0); seed < 20; seed++ {
				c, err := Generate(category, "", seeded(seed))
				require.NoError(t, err)
				assert.Equal(t, category, c.Category)
			}
		})
	}
}

func TestGenerateByComplexity(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		c, err := Generate("", "complex", seeded(seed))
		require.NoError(t, err)
		assert.Equal(t, "hard", c.Difficulty)
	}

	c, err := Generate("arcade", "medium", seeded(1))
	require.NoError(t, err)
	assert.Equal(t, "arcade", c.Category)
	assert.Equal(t, "medium", c.Difficulty)
}

func TestGenerateFallsBackToFullTable(t *testing.T) {
	all, err := Concepts()
	require.NoError(t, err)

	tests := []struct {
		name       string
		category   string
		complexity string
	}{
		{"unknown category", "nonexistent", ""},
		{"no easy concepts", "", "simple"},
		{"no easy puzzle", "puzzle", "simple"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen := map[string]bool{}
			for seed := uint64(0); seed < 50; seed++ {
				c, err := Generate(tt.category, tt.complexity, seeded(seed))
				require.NoError(t, err)
				assert.Contains(t, all, c)
				seen[c.Title] = true
			}
			assert.Greater(t, len(seen), 1, "fallback should draw from the whole table")
		})
	}
}

func TestGenerateIgnoresUnknownComplexity(t *testing.T) {
	c, err := Generate("strategy", "extreme", seeded(3))
	require.NoError(t, err)
	assert.Equal(t, "Resource Empire", c.Title)
}

func TestGenerateDefaultSource(t *testing.T) {
	c, err := Generate("educational", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "Word Wizard", c.Title)
}

func TestFormat(t *testing.T) {
	c := Concept{
		Title:       "Color Matcher",
		Category:    "puzzle",
		Description: "Match falling colored blocks to create patterns and score points.",
		Mechanics:   []string{"Blocks fall", "Match three"},
		Difficulty:  "medium",
		Tags:        []string{"puzzle", "matching", "casual"},
	}

	got, err := Format(c)
	require.NoError(t, err)

	want := `# Game Proposal: Color Matcher

## Overview
Match falling colored blocks to create patterns and score points.

## Category
Puzzle

## Core Mechanics
- Blocks fall
- Match three

## Target Audience
Casual gamers interested in puzzle games.

## Unique Selling Points
- Engaging puzzle gameplay
- Intuitive controls
- Progressive difficulty curve

## Technical Considerations
- Standard HTML5 canvas for rendering
- Mobile-friendly controls
- Local storage for saving progress

## Development Estimate
2-3 weeks for a basic implementation

## Tags
puzzle, matching, casual
`
	assert.Equal(t, want, got)
}

func TestProposalName(t *testing.T) {
	now := time.Date(2026, 7, 4, 13, 5, 9, 0, time.UTC)

	assert.Equal(t, "game_proposal_20260704_130509.md", ProposalName("", now))
	assert.Equal(t, "space.md", ProposalName("space", now))
	assert.Equal(t, "space.md", ProposalName("space.md", now))
	assert.Equal(t, "notes.txt.md", ProposalName("notes.txt", now))
}

func TestSave(t *testing.T) {
	fsys := afero.NewMemMapFs()
	now := time.Date(2026, 7, 4, 13, 5, 9, 0, time.UTC)
	dir := filepath.Join("/site", "proposals")

	path, err := Save(fsys, dir, "", "# hello\n", now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "game_proposal_20260704_130509.md"), path)

	data, err := afero.ReadFile(fsys, path)
	require.NoError(t, err)
	assert.Equal(t, "# hello\n", string(data))

	path, err = Save(fsys, dir, "my-idea", "x", now)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, "my-idea.md"))
}

func TestValidateRejectsBadTable(t *testing.T) {
	bad := []byte(`
- title: Broken
  category: racing
  description: ""
  mechanics: []
  difficulty: medium
  tags: []
`)
	issues, err := Validate(bad)
	require.NoError(t, err)
	require.NotEmpty(t, issues)

	var paths []string
	for _, issue := range issues {
		paths = append(paths, issue.Path)
	}
	assert.Contains(t, paths, "/0/category")

	_, err = parseConcepts(bad)
	assert.ErrorContains(t, err, "invalid concept table")
}

func TestValidateEmbeddedTable(t *testing.T) {
	issues, err := Validate(conceptsYAML)
	require.NoError(t, err)
	assert.Empty(t, issues)
}
