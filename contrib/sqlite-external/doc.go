// Package sqliteexternal links the CGO SQLite driver (github.com/mattn/go-sqlite3)
// into BibleRef builds that ask for it.
//
// The package only has content with the cgo_sqlite build tag:
//
//	CGO_ENABLED=1 go build -tags cgo_sqlite ./cmd/bibleref
//
// Without the tag, core/sqlite registers the pure Go modernc.org/sqlite
// driver instead, which keeps cross-compiled bibleref binaries static.
package sqliteexternal
