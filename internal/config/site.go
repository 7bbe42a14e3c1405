package config

import "path/filepath"

// Site describes where the Arcade Hub assets live on disk.
type Site struct {
	Root         string
	GamesDir     string
	ImagesDir    string
	RegistryFile string
	ProposalsDir string
}

// SiteAt resolves the configured layout against root. Absolute settings
// are kept as-is.
func SiteAt(root string) Site {
	if root == "" {
		root = "."
	}
	return Site{
		Root:         root,
		GamesDir:     resolve(root, Get(KeyGamesDir)),
		ImagesDir:    resolve(root, Get(KeyImagesDir)),
		RegistryFile: resolve(root, Get(KeyRegistryFile)),
		ProposalsDir: resolve(root, Get(KeyProposalsDir)),
	}
}

func resolve(root, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}
