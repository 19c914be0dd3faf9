package emit

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
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

// ImageFetcher downloads one image for an object and returns the local path
// it was stored under. Retry, resizing and format conversion are the
// fetcher's business.
type ImageFetcher interface {
	Fetch(ctx context.Context, id, url string) (string, error)
}

// FetchGallery asks fetcher for one image per gallery entry, trying each URL
// in order until one succeeds. The result feeds Localize. Ids for which
// every URL fails are logged and left out.
func FetchGallery(ctx context.Context, fetcher ImageFetcher, gallery catalogs.GalleryMap) (map[string]string, error) {
	logger := logging.FromContext(ctx)
	paths := make(map[string]string, len(gallery.IDs))

	for _, id := range gallery.IDs {
		if err := ctx.Err(); err != nil {
			return paths, err
		}
		for _, url := range gallery.Images[id] {
			local, err := fetcher.Fetch(ctx, id, url)
			if err != nil {
				logger.Debug().
					Err(err).
					Str("object_id", id).
					Str("url", url).
					Msg("Image fetch failed, trying next")
				continue
			}
			paths[id] = local
			break
		}
		if _, ok := paths[id]; !ok {
			logger.Warn().Str("object_id", id).Msg("No image could be fetched")
		}
	}
	return paths, nil
}

// HTTPFetcher downloads images into Dir as <id><ext>.
type HTTPFetcher struct {
	Dir    string
	Client *http.Client
}

// NewHTTPFetcher creates a fetcher storing images in dir.
func NewHTTPFetcher(dir string) *HTTPFetcher {
	return &HTTPFetcher{
		Dir:    dir,
		Client: &http.Client{Timeout: constants.DefaultHTTPTimeout},
	}
}

// Fetch implements ImageFetcher. The extension comes from the URL path and
// defaults to .jpg; the returned path is relative to the app bundle.
func (f *HTTPFetcher) Fetch(ctx context.Context, id, ref string) (string, error) {
	if id == "" || filepath.Base(id) != id {
		return "", errors.NewValidationError("id", id, "not usable as a file name")
	}
	u, err := url.Parse(ref)
	if err != nil {
		return "", errors.WrapResource("parse", "image url", ref, err)
	}
	ext := strings.ToLower(path.Ext(u.Path))
	if !slices.Contains(imageExts, ext) {
		ext = ".jpg"
	}

	if err := os.MkdirAll(f.Dir, constants.DirPermissions); err != nil {
		return "", errors.WrapIO("create", f.Dir, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return "", errors.WrapResource("create", "request", ref, err)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return "", errors.WrapResource("fetch", "image", ref, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", errors.WrapResource("fetch", "image", ref, fmt.Errorf("unexpected status %s", resp.Status))
	}

	name := id + ext
	tmp, err := os.CreateTemp(f.Dir, "."+name+".*.tmp")
	if err != nil {
		return "", errors.WrapIO("create", f.Dir, err)
	}
	tmpPath := tmp.Name()
	_, err = io.Copy(tmp, resp.Body)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(tmpPath)
		return "", errors.WrapIO("write", name, err)
	}
	if err := os.Chmod(tmpPath, constants.FilePermissions); err != nil {
		_ = os.Remove(tmpPath)
		return "", errors.WrapIO("write", name, err)
	}
	if err := os.Rename(tmpPath, filepath.Join(f.Dir, name)); err != nil {
		_ = os.Remove(tmpPath)
		return "", errors.WrapIO("move", name, err)
	}
	return path.Join(constants.LocalImagesDir, name), nil
}
