// Package idea picks game concepts from a fixed, embedded table and renders
// them as markdown proposals. The table is validated against an embedded JSON
// Schema the first time it is loaded and is read-only afterwards.
package idea
