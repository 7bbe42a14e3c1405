// Package testrunner runs the repository's test suites: the Go suite via
// `go test` and the site's JavaScript suite via `npm test`. Each suite is a
// Suite implementation; Runner executes the selected suites in order and
// reports whether all of them passed.
package testrunner
