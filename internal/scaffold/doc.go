// Package scaffold generates new Arcade Hub games from embedded templates. It
// powers the "arcadehub create" command, producing games/<id>/ with a markup
// shell, a game-loop script stub and a stylesheet, and making sure the shared
// images/ directory exists for the game's thumbnail.
package scaffold
