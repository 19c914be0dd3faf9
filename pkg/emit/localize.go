package emit

import (
	"context"
	"encoding/json"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/karnadigital/atlas/pkg/catalogs"
	"github.com/karnadigital/atlas/pkg/constants"
	"github.com/karnadigital/atlas/pkg/errors"
	"github.com/karnadigital/atlas/pkg/logging"
)

// imageExts lists the recognized image extensions, preferred first.
var imageExts = []string{".webp", ".png", ".jpg", ".jpeg"}

// Localize points ImageURL at the local path of every object that has one
// and returns how many objects changed. Objects without a local path are
// left as they are.
func Localize(objects []*catalogs.Object, paths map[string]string) int {
	changed := 0
	for _, obj := range objects {
		local, ok := paths[obj.ID]
		if !ok || local == "" || obj.ImageURL == local {
			continue
		}
		obj.ImageURL = local
		changed++
	}
	return changed
}

// ScanImages maps ids to app-relative paths for every <id>.<ext> file in
// dir. When an id has several files the preferred extension wins.
func ScanImages(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("images directory", dir)
		}
		return nil, errors.WrapIO("read", dir, err)
	}

	paths := make(map[string]string)
	rank := make(map[string]int)
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		r := slices.Index(imageExts, ext)
		if r < 0 {
			continue
		}
		id := strings.TrimSuffix(name, filepath.Ext(name))
		if id == "" {
			continue
		}
		if prev, ok := rank[id]; ok && prev <= r {
			continue
		}
		rank[id] = r
		paths[id] = path.Join(constants.LocalImagesDir, name)
	}
	return paths, nil
}

// LoadImageMap reads an explicit id to local path map from a JSON file.
func LoadImageMap(file string) (map[string]string, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("image map", file)
		}
		return nil, errors.WrapIO("read", file, err)
	}
	paths := make(map[string]string)
	if err := json.Unmarshal(data, &paths); err != nil {
		return nil, errors.WrapParse("json", file, err)
	}
	return paths, nil
}

// RewriteObjects applies Localize to the catalog emitted in dir. The
// default SQLite snapshot is updated too when it exists.
func RewriteObjects(ctx context.Context, dir string, paths map[string]string) (int, error) {
	w, err := NewWriter(dir, WithSQLite(constants.SQLiteFile))
	if err != nil {
		return 0, err
	}
	return w.Rewrite(ctx, paths)
}

// Rewrite applies Localize to the object list in the output directory and
// replaces it atomically. A compressed copy and the configured SQLite
// snapshot, when present, are rewritten in the same pass.
func (w *Writer) Rewrite(ctx context.Context, paths map[string]string) (int, error) {
	logger := logging.FromContext(ctx)

	objects, err := LoadObjects(w.dir)
	if err != nil {
		return 0, err
	}
	changed := Localize(objects, paths)
	if changed == 0 {
		logger.Info().Msg("No image references to rewrite")
		return 0, nil
	}

	data, err := encodeJSON(objects)
	if err != nil {
		return 0, errors.WrapResource("encode", "document", constants.ObjectsFile, err)
	}

	b := newBatch(w.dir)
	defer b.abort()

	if err := b.add(constants.ObjectsFile, data); err != nil {
		return 0, err
	}
	compressed := filepath.Join(w.dir, constants.ObjectsFile+constants.CompressedExt)
	if _, err := os.Stat(compressed); err == nil {
		packed, err := compressZstd(data)
		if err != nil {
			return 0, errors.WrapResource("compress", "document", constants.ObjectsFile, err)
		}
		if err := b.add(constants.ObjectsFile+constants.CompressedExt, packed); err != nil {
			return 0, err
		}
	}

	// The database update is staged in a transaction and committed only
	// after the documents are in place.
	var update *imageUpdate
	if w.sqlite != "" {
		dbPath := target(w.dir, w.sqlite)
		if _, err := os.Stat(dbPath); err == nil {
			update, err = stageImageURLs(ctx, dbPath, objects, paths)
			if err != nil {
				return 0, errors.WrapResource("update", "database", dbPath, err)
			}
			defer update.release()
		}
	}

	if _, err := b.commit(); err != nil {
		return 0, err
	}
	if update != nil {
		if err := update.commit(); err != nil {
			return 0, errors.WrapResource("update", "database", update.path, err)
		}
	}

	logger.Info().
		Int("rewritten", changed).
		Str("dir", w.dir).
		Bool("sqlite", update != nil).
		Msg("Rewrote image references to local paths")
	return changed, nil
}
