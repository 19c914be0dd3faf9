package emit

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/karnadigital/atlas/pkg/catalogs"
)

const schema = `
CREATE TABLE IF NOT EXISTS astronomical_objects (
  id TEXT PRIMARY KEY,
  position INTEGER NOT NULL,
  name TEXT NOT NULL,
  type TEXT NOT NULL,
  category TEXT NOT NULL,
  description TEXT,
  distance_au REAL,
  distance_ly REAL,
  radius_km REAL,
  mass_kg REAL,
  magnitude REAL,
  constellation TEXT,
  image_url TEXT,
  right_ascension REAL,
  declination REAL,
  parent_id TEXT,
  interesting_facts TEXT, -- JSON array as text
  metadata TEXT           -- JSON object as text
);
CREATE TABLE IF NOT EXISTS object_images (
  object_id TEXT NOT NULL,
  position INTEGER NOT NULL,
  url TEXT NOT NULL,
  PRIMARY KEY (object_id, position)
);
CREATE TABLE IF NOT EXISTS category_members (
  category TEXT NOT NULL,
  position INTEGER NOT NULL,
  object_id TEXT NOT NULL,
  PRIMARY KEY (category, position)
);
`

// writeSQLite stores snap in a SQLite database at path.
func writeSQLite(ctx context.Context, path string, snap *catalogs.Snapshot) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	defer func() { _ = db.Close() }()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := saveObjects(ctx, tx, snap.Objects); err != nil {
		return err
	}
	if err := saveImages(ctx, tx, snap.Gallery); err != nil {
		return err
	}
	if err := saveCategories(ctx, tx, snap.Categories); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func saveObjects(ctx context.Context, tx *sql.Tx, objects []*catalogs.Object) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO astronomical_objects (id, position, name, type, category, description,
		  distance_au, distance_ly, radius_km, mass_kg, magnitude, constellation, image_url,
		  right_ascension, declination, parent_id, interesting_facts, metadata)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
		  position = excluded.position,
		  name = excluded.name,
		  type = excluded.type,
		  category = excluded.category,
		  description = excluded.description,
		  distance_au = excluded.distance_au,
		  distance_ly = excluded.distance_ly,
		  radius_km = excluded.radius_km,
		  mass_kg = excluded.mass_kg,
		  magnitude = excluded.magnitude,
		  constellation = excluded.constellation,
		  image_url = excluded.image_url,
		  right_ascension = excluded.right_ascension,
		  declination = excluded.declination,
		  parent_id = excluded.parent_id,
		  interesting_facts = excluded.interesting_facts,
		  metadata = excluded.metadata
	`)
	if err != nil {
		return fmt.Errorf("prepare stmt: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, obj := range objects {
		facts, err := json.Marshal(obj.InterestingFacts)
		if err != nil {
			return fmt.Errorf("marshal facts for %s: %w", obj.ID, err)
		}
		var metadata sql.NullString
		if obj.Metadata != nil {
			data, err := json.Marshal(obj.Metadata)
			if err != nil {
				return fmt.Errorf("marshal metadata for %s: %w", obj.ID, err)
			}
			metadata = sql.NullString{String: string(data), Valid: true}
		}

		if _, err := stmt.ExecContext(
			ctx,
			obj.ID,
			i,
			obj.Name,
			string(obj.Type),
			string(obj.Category),
			nullString(obj.Description),
			obj.DistanceAu,
			obj.DistanceLy,
			obj.RadiusKm,
			obj.MassKg,
			obj.Magnitude,
			nullString(obj.Constellation),
			nullString(obj.ImageURL),
			obj.RightAscension,
			obj.Declination,
			nullString(obj.ParentID),
			string(facts),
			metadata,
		); err != nil {
			return fmt.Errorf("exec upsert for %s: %w", obj.ID, err)
		}
	}
	return nil
}

func saveImages(ctx context.Context, tx *sql.Tx, gallery catalogs.GalleryMap) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT OR REPLACE INTO object_images (object_id, position, url) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare stmt: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, id := range gallery.IDs {
		for i, url := range gallery.Images[id] {
			if _, err := stmt.ExecContext(ctx, id, i, url); err != nil {
				return fmt.Errorf("exec insert image for %s: %w", id, err)
			}
		}
	}
	return nil
}

func saveCategories(ctx context.Context, tx *sql.Tx, index *catalogs.CategoryIndex) error {
	if index == nil {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT OR REPLACE INTO category_members (category, position, object_id) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare stmt: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, category := range catalogs.Categories() {
		for i, id := range index.IDs(category) {
			if _, err := stmt.ExecContext(ctx, string(category), i, id); err != nil {
				return fmt.Errorf("exec insert category for %s: %w", id, err)
			}
		}
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// imageUpdate is an uncommitted image_url rewrite of a SQLite snapshot.
type imageUpdate struct {
	path string
	db   *sql.DB
	tx   *sql.Tx
}

// stageImageURLs sets image_url to the local path of every object listed in
// paths, inside a transaction the caller commits or releases.
func stageImageURLs(ctx context.Context, path string, objects []*catalogs.Object, paths map[string]string) (*imageUpdate, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	u := &imageUpdate{path: path, db: db, tx: tx}

	stmt, err := tx.PrepareContext(ctx, `UPDATE astronomical_objects SET image_url = ? WHERE id = ?`)
	if err != nil {
		u.release()
		return nil, fmt.Errorf("prepare image update: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, obj := range objects {
		local, ok := paths[obj.ID]
		if !ok || local == "" {
			continue
		}
		if _, err := stmt.ExecContext(ctx, local, obj.ID); err != nil {
			u.release()
			return nil, fmt.Errorf("update image of %s: %w", obj.ID, err)
		}
	}
	return u, nil
}

func (u *imageUpdate) commit() error {
	if err := u.tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// release rolls back an uncommitted update and closes the database.
func (u *imageUpdate) release() {
	_ = u.tx.Rollback()
	_ = u.db.Close()
}
