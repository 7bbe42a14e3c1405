//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir string // HOME, holds .arcadehub/config.yaml
	SiteDir string // a mock Arcade Hub site root
}

// setupTestEnv creates isolated temp directories and points HOME at one of
// them so no arcadehub operation touches the real user config. The env vars
// are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir: t.TempDir(),
		SiteDir: t.TempDir(),
	}
	t.Setenv("HOME", env.HomeDir)

	for _, sub := range []string{"games", "images", "js"} {
		if err := os.MkdirAll(filepath.Join(env.SiteDir, sub), 0755); err != nil {
			t.Fatalf("creating site/%s: %v", sub, err)
		}
	}
	return env
}

// setupSite writes a registry script shaped like the live site's js/main.js.
// Returns the registry path.
func setupSite(t *testing.T, siteDir string) string {
	t.Helper()

	path := filepath.Join(siteDir, "js", "main.js")
	writeFile(t, path, `/**
 * Arcade Hub - Main JavaScript
 * Example: const GAMES = [ ... ] is filled in by the tooling.
 */
const HighScores = {
  key: (gameId) => 'scores_' + gameId,
  get(gameId) {
    return JSON.parse(localStorage.getItem(this.key(gameId)) || '[]');
  }
};

const GAMES = [
  {
    id: "rhythm-defense",
    title: "Rhythm Defense",
    description: "Defend the beat.",
    category: "arcade",
    tags: ["music", "rhythm"]
  }
];

function renderGames(games) {
  const pattern = /\[games\]/g;
  return games.map(g => g.title.replace(pattern, ''));
}
`)
	return path
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// readFile returns the contents of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
