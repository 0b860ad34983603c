// Package catalog indexes persisted map snapshots in a SQL table so a
// deployment can list, look up by ID, and prune old snapshots without
// scanning a directory of binary files. It is deliberately driver
// agnostic: callers register whichever of the blank-imported drivers
// matches their deployment by passing its driver name to Open.
package catalog

import (
	"context"
	"database/sql"
	"time"

	// Driver set mirrors the multi-backend connection support of the
	// database module this package's table layout is grounded on:
	// any of these names can be passed to Open.
	_ "github.com/denisenkom/go-mssqldb"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"

	"github.com/google/uuid"

	"ngonmap/cmerr"
)

// Snapshot is one row of the catalog: metadata about a persisted
// container or map on disk, not its contents.
type Snapshot struct {
	ID        uuid.UUID
	Name      string
	Dimension int
	NbDarts   uint32
	Path      string
	CreatedAt time.Time
}

// Index is a SQL-backed catalog of snapshots.
type Index struct {
	db *sql.DB
}

// Open connects to driverName/dsn and ensures the snapshots table
// exists. driverName must match one of the blank-imported drivers
// above (e.g. "sqlite3", "mysql", "postgres", "sqlserver", "sqlite").
func Open(driverName, dsn string) (*Index, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, cmerr.Wrap(cmerr.Precondition, "catalog.Open", err)
	}
	idx := &Index{db: db}
	if err := idx.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return idx, nil
}

func (idx *Index) migrate() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS map_snapshots (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	dimension  INTEGER NOT NULL,
	nb_darts   INTEGER NOT NULL,
	path       TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
)`
	if _, err := idx.db.Exec(ddl); err != nil {
		return cmerr.Wrap(cmerr.Precondition, "catalog.migrate", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (idx *Index) Close() error { return idx.db.Close() }

// Record inserts a new snapshot row, generating its ID.
func (idx *Index) Record(ctx context.Context, name string, dimension int, nbDarts uint32, path string, createdAt time.Time) (uuid.UUID, error) {
	id := uuid.New()
	const q = `INSERT INTO map_snapshots (id, name, dimension, nb_darts, path, created_at) VALUES (?, ?, ?, ?, ?, ?)`
	if _, err := idx.db.ExecContext(ctx, q, id.String(), name, dimension, nbDarts, path, createdAt); err != nil {
		return uuid.Nil, cmerr.Wrap(cmerr.Precondition, "catalog.Record", err)
	}
	return id, nil
}

// Get looks up a snapshot by ID.
func (idx *Index) Get(ctx context.Context, id uuid.UUID) (Snapshot, error) {
	const q = `SELECT id, name, dimension, nb_darts, path, created_at FROM map_snapshots WHERE id = ?`
	row := idx.db.QueryRowContext(ctx, q, id.String())
	return scanSnapshot(row)
}

// List returns every recorded snapshot, most recent first.
func (idx *Index) List(ctx context.Context) ([]Snapshot, error) {
	const q = `SELECT id, name, dimension, nb_darts, path, created_at FROM map_snapshots ORDER BY created_at DESC`
	rows, err := idx.db.QueryContext(ctx, q)
	if err != nil {
		return nil, cmerr.Wrap(cmerr.Precondition, "catalog.List", err)
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Prune deletes every snapshot recorded before cutoff and returns how
// many rows were removed.
func (idx *Index) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	const q = `DELETE FROM map_snapshots WHERE created_at < ?`
	res, err := idx.db.ExecContext(ctx, q, cutoff)
	if err != nil {
		return 0, cmerr.Wrap(cmerr.Precondition, "catalog.Prune", err)
	}
	return res.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSnapshot(row rowScanner) (Snapshot, error) {
	var s Snapshot
	var idStr string
	if err := row.Scan(&idStr, &s.Name, &s.Dimension, &s.NbDarts, &s.Path, &s.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return Snapshot{}, cmerr.New(cmerr.Missing, "catalog.Get", idStr)
		}
		return Snapshot{}, cmerr.Wrap(cmerr.Precondition, "catalog.scanSnapshot", err)
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return Snapshot{}, cmerr.Wrap(cmerr.Precondition, "catalog.scanSnapshot", err)
	}
	s.ID = id
	return s, nil
}
