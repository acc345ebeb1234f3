// Package schema contains embedded migration files.
package schema

import (
	"crypto/sha256"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"
)

//go:embed pgmigrations/*.sql sqlitemigrations/*.sql
var MigrationsFS embed.FS

const (
	Postgres = "pgmigrations"
	SQLite   = "sqlitemigrations"
)

// Migration is one forward-only SQL file.
type Migration struct {
	Version  string
	SQL      string
	Checksum string
}

// Load returns the migrations under dir in apply order. Files are applied
// alphabetically, so names carry a numeric prefix (001_xxx.sql).
func Load(dir string) ([]Migration, error) {
	return LoadFS(MigrationsFS, dir)
}

// LoadFS is Load over any filesystem.
func LoadFS(fsys fs.FS, dir string) ([]Migration, error) {
	var files []string

	err := fs.WalkDir(fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(p, ".sql") {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}

	sort.Strings(files)

	out := make([]Migration, 0, len(files))
	for _, f := range files {
		content, err := fs.ReadFile(fsys, f)
		if err != nil {
			return nil, fmt.Errorf("read migration file: %w", err)
		}
		out = append(out, Migration{
			Version:  path.Base(f),
			SQL:      string(content),
			Checksum: fmt.Sprintf("%x", sha256.Sum256(content)),
		})
	}
	return out, nil
}

// ChecksumMismatch is returned when an applied migration was edited afterwards.
type ChecksumMismatch struct {
	Version  string
	Expected string
	Got      string
}

func (e *ChecksumMismatch) Error() string {
	return fmt.Sprintf("migration %s has been modified after being applied (expected: %s, got: %s)",
		e.Version, e.Expected, e.Got)
}

// Applied is a row of the schema_migrations table.
type Applied struct {
	Version   string
	Checksum  string
	AppliedAt time.Time
}

// State describes a migration relative to a database.
type State string

const (
	StatePending  State = "pending"
	StateApplied  State = "applied"
	StateModified State = "modified" // applied, but the file changed since
	StateUnknown  State = "unknown"  // applied, but no longer embedded
)

// Status is one line of a migration report.
type Status struct {
	Version   string
	State     State
	AppliedAt *time.Time
}

// Compare reports every embedded and applied migration, embedded files first
// in apply order.
func Compare(embedded []Migration, applied []Applied) []Status {
	byVersion := make(map[string]Applied, len(applied))
	for _, a := range applied {
		byVersion[a.Version] = a
	}

	out := make([]Status, 0, len(embedded))
	seen := make(map[string]bool, len(embedded))
	for _, m := range embedded {
		seen[m.Version] = true
		a, ok := byVersion[m.Version]
		switch {
		case !ok:
			out = append(out, Status{Version: m.Version, State: StatePending})
		case a.Checksum != m.Checksum:
			out = append(out, Status{Version: m.Version, State: StateModified, AppliedAt: &a.AppliedAt})
		default:
			out = append(out, Status{Version: m.Version, State: StateApplied, AppliedAt: &a.AppliedAt})
		}
	}

	for _, a := range applied {
		if !seen[a.Version] {
			out = append(out, Status{Version: a.Version, State: StateUnknown, AppliedAt: &a.AppliedAt})
		}
	}
	return out
}
