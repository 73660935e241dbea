// Package store keeps book tables in a SQLite database and serves them as
// a bibledata.Provider.
//
// A database holds any number of tables keyed by translation code. The
// empty code is the default table used for references without a
// translation. Each table is stored with its BLAKE3 fingerprint, which is
// checked again on load.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/FocuswithJustin/BibleRef/core/bibledata"
	"github.com/FocuswithJustin/BibleRef/core/cache"
	"github.com/FocuswithJustin/BibleRef/core/errors"
	"github.com/FocuswithJustin/BibleRef/core/sqlite"
	"github.com/FocuswithJustin/BibleRef/internal/logging"
)

const schema = `
CREATE TABLE IF NOT EXISTS tables (
	translation TEXT PRIMARY KEY,
	fingerprint TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS books (
	translation TEXT NOT NULL REFERENCES tables(translation) ON DELETE CASCADE,
	idx INTEGER NOT NULL,
	name TEXT NOT NULL,
	testament TEXT NOT NULL,
	abbreviations TEXT NOT NULL,
	PRIMARY KEY (translation, idx)
);
CREATE TABLE IF NOT EXISTS chapters (
	translation TEXT NOT NULL,
	book_idx INTEGER NOT NULL,
	chapter INTEGER NOT NULL,
	verse_count INTEGER NOT NULL,
	PRIMARY KEY (translation, book_idx, chapter),
	FOREIGN KEY (translation, book_idx) REFERENCES books(translation, idx) ON DELETE CASCADE
);
CREATE TABLE IF NOT EXISTS omissions (
	translation TEXT NOT NULL,
	book_idx INTEGER NOT NULL,
	chapter INTEGER NOT NULL,
	pos INTEGER NOT NULL,
	verse INTEGER NOT NULL,
	PRIMARY KEY (translation, book_idx, chapter, pos),
	FOREIGN KEY (translation, book_idx) REFERENCES books(translation, idx) ON DELETE CASCADE
);
`

// Store is a SQLite database of book tables.
type Store struct {
	db   *sql.DB
	path string
}

// TableInfo describes one stored table.
type TableInfo struct {
	Translation string    `json:"translation"`
	Fingerprint string    `json:"fingerprint"`
	Books       int       `json:"books"`
	CreatedAt   time.Time `json:"created_at"`
}

// Open opens or creates the database at path and ensures the schema exists.
func Open(path string) (*Store, error) {
	db, err := sqlite.Open(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create schema")
	}
	return &Store{db: db, path: path}, nil
}

// OpenReadOnly opens an existing database for lookups only.
func OpenReadOnly(path string) (*Store, error) {
	db, err := sqlite.OpenReadOnly(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	return &Store{db: db, path: path}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Save validates books and stores them as the table for translation,
// replacing any existing table with the same code.
func (s *Store) Save(ctx context.Context, translation string, books []bibledata.Book) error {
	if err := bibledata.Validate(books); err != nil {
		return err
	}
	fp, err := bibledata.Fingerprint(books)
	if err != nil {
		return err
	}
	code := bibledata.NormalizeTranslation(translation)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin transaction")
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tables WHERE translation = ?`, code); err != nil {
		return errors.Wrapf(err, "replace table %q", code)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO tables (translation, fingerprint, created_at) VALUES (?, ?, ?)`,
		code, fp, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return errors.Wrapf(err, "insert table %q", code)
	}

	insBook, err := tx.PrepareContext(ctx,
		`INSERT INTO books (translation, idx, name, testament, abbreviations) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "prepare books")
	}
	defer insBook.Close()

	insChapter, err := tx.PrepareContext(ctx,
		`INSERT INTO chapters (translation, book_idx, chapter, verse_count) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "prepare chapters")
	}
	defer insChapter.Close()

	insOmission, err := tx.PrepareContext(ctx,
		`INSERT INTO omissions (translation, book_idx, chapter, pos, verse) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "prepare omissions")
	}
	defer insOmission.Close()

	for i, b := range books {
		idx := i + 1
		abbrs, err := json.Marshal(b.Abbreviations)
		if err != nil {
			return errors.Wrapf(err, "encode abbreviations of %s", b.Name)
		}
		if _, err := insBook.ExecContext(ctx, code, idx, b.Name, string(b.Testament), string(abbrs)); err != nil {
			return errors.Wrapf(err, "insert %s", b.Name)
		}

		for ch, n := range b.VerseCounts {
			if _, err := insChapter.ExecContext(ctx, code, idx, ch+1, n); err != nil {
				return errors.Wrapf(err, "insert %s %d", b.Name, ch+1)
			}
		}

		chapters := make([]int, 0, len(b.Omissions))
		for ch := range b.Omissions {
			chapters = append(chapters, ch)
		}
		slices.Sort(chapters)
		for _, ch := range chapters {
			for pos, v := range b.Omissions[ch] {
				if _, err := insOmission.ExecContext(ctx, code, idx, ch, pos, v); err != nil {
					return errors.Wrapf(err, "insert omission %s %d:%d", b.Name, ch, v)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit")
	}
	logging.DatasetSaved("sqlite:"+s.path, 1, "translation", code, "books", len(books), "fingerprint", fp)
	return nil
}

// Load returns the table stored for translation. It fails with
// errors.ErrNotFound when no such table exists.
func (s *Store) Load(ctx context.Context, translation string) ([]bibledata.Book, error) {
	code := bibledata.NormalizeTranslation(translation)

	var want string
	err := s.db.QueryRowContext(ctx, `SELECT fingerprint FROM tables WHERE translation = ?`, code).Scan(&want)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("book table %q: %w", code, errors.ErrNotFound)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "query table %q", code)
	}

	books, err := s.loadBooks(ctx, code)
	if err != nil {
		return nil, err
	}
	if err := s.loadChapters(ctx, code, books); err != nil {
		return nil, err
	}
	if err := s.loadOmissions(ctx, code, books); err != nil {
		return nil, err
	}

	got, err := bibledata.Fingerprint(books)
	if err != nil {
		return nil, err
	}
	if got != want {
		return nil, errors.NewParse("book table", s.path,
			fmt.Sprintf("fingerprint mismatch for %q: stored %s, computed %s", code, want, got))
	}

	logging.DatasetLoaded("sqlite:"+s.path, code, len(books))
	return books, nil
}

func (s *Store) loadBooks(ctx context.Context, code string) ([]bibledata.Book, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, testament, abbreviations FROM books WHERE translation = ? ORDER BY idx`, code)
	if err != nil {
		return nil, errors.Wrap(err, "query books")
	}
	defer rows.Close()

	var books []bibledata.Book
	for rows.Next() {
		var (
			b         bibledata.Book
			testament string
			abbrs     string
		)
		if err := rows.Scan(&b.Name, &testament, &abbrs); err != nil {
			return nil, errors.Wrap(err, "scan book")
		}
		if err := json.Unmarshal([]byte(abbrs), &b.Abbreviations); err != nil {
			return nil, &errors.ParseError{Format: "JSON", Path: s.path, Message: "abbreviations of " + b.Name, Err: err}
		}
		b.Testament = bibledata.Testament(testament)
		books = append(books, b)
	}
	return books, rows.Err()
}

func (s *Store) loadChapters(ctx context.Context, code string, books []bibledata.Book) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT book_idx, verse_count FROM chapters WHERE translation = ? ORDER BY book_idx, chapter`, code)
	if err != nil {
		return errors.Wrap(err, "query chapters")
	}
	defer rows.Close()

	for rows.Next() {
		var idx, n int
		if err := rows.Scan(&idx, &n); err != nil {
			return errors.Wrap(err, "scan chapter")
		}
		if idx < 1 || idx > len(books) {
			return errors.NewParse("book table", s.path, fmt.Sprintf("chapter row for missing book %d", idx))
		}
		b := &books[idx-1]
		b.VerseCounts = append(b.VerseCounts, n)
	}
	return rows.Err()
}

func (s *Store) loadOmissions(ctx context.Context, code string, books []bibledata.Book) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT book_idx, chapter, verse FROM omissions WHERE translation = ? ORDER BY book_idx, chapter, pos`, code)
	if err != nil {
		return errors.Wrap(err, "query omissions")
	}
	defer rows.Close()

	for rows.Next() {
		var idx, ch, v int
		if err := rows.Scan(&idx, &ch, &v); err != nil {
			return errors.Wrap(err, "scan omission")
		}
		if idx < 1 || idx > len(books) {
			return errors.NewParse("book table", s.path, fmt.Sprintf("omission row for missing book %d", idx))
		}
		b := &books[idx-1]
		if b.Omissions == nil {
			b.Omissions = make(map[int][]int)
		}
		b.Omissions[ch] = append(b.Omissions[ch], v)
	}
	return rows.Err()
}

// Tables lists the stored tables ordered by translation code.
func (s *Store) Tables(ctx context.Context) ([]TableInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT t.translation, t.fingerprint, t.created_at, COUNT(b.idx)
		FROM tables t LEFT JOIN books b ON b.translation = t.translation
		GROUP BY t.translation
		ORDER BY t.translation`)
	if err != nil {
		return nil, errors.Wrap(err, "query tables")
	}
	defer rows.Close()

	var infos []TableInfo
	for rows.Next() {
		var (
			info    TableInfo
			created string
		)
		if err := rows.Scan(&info.Translation, &info.Fingerprint, &created, &info.Books); err != nil {
			return nil, errors.Wrap(err, "scan table")
		}
		info.CreatedAt, _ = time.Parse(time.RFC3339, created)
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// Lookup implements bibledata.Provider. Codes without a stored table get
// the default table.
func (s *Store) Lookup(translation string) ([]bibledata.Book, error) {
	ctx := context.Background()
	books, err := s.Load(ctx, translation)
	if errors.Is(err, errors.ErrNotFound) && bibledata.NormalizeTranslation(translation) != "" {
		return s.Load(ctx, "")
	}
	return books, err
}

// Provider returns a caching provider over the store.
func (s *Store) Provider() bibledata.Provider {
	return bibledata.NewCachedProvider(s, cache.DefaultConfig())
}
