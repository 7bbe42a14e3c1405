// Package game defines the descriptor shared by the scaffold and registry
// commands: a game id, its display strings, one of the four site categories,
// and an ordered tag list.
package game
