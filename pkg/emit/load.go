package emit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/karnadigital/atlas/pkg/catalogs"
	"github.com/karnadigital/atlas/pkg/constants"
	"github.com/karnadigital/atlas/pkg/errors"
)

// LoadObjects reads the emitted object list from dir. When only the
// compressed copy exists it is decompressed.
func LoadObjects(dir string) ([]*catalogs.Object, error) {
	data, err := readDocument(dir, constants.ObjectsFile)
	if err != nil {
		return nil, err
	}
	var objects []*catalogs.Object
	if err := json.Unmarshal(data, &objects); err != nil {
		return nil, errors.WrapParse("json", constants.ObjectsFile, err)
	}
	return objects, nil
}

// LoadGallery reads the emitted image gallery from dir, keeping the
// document's id order.
func LoadGallery(dir string) (catalogs.GalleryMap, error) {
	data, err := readDocument(dir, constants.GalleryFile)
	if err != nil {
		return catalogs.GalleryMap{}, err
	}
	gallery, err := decodeGallery(data)
	if err != nil {
		return catalogs.GalleryMap{}, errors.WrapParse("json", constants.GalleryFile, err)
	}
	return gallery, nil
}

func decodeGallery(data []byte) (catalogs.GalleryMap, error) {
	gallery := catalogs.GalleryMap{Images: map[string][]string{}}
	dec := json.NewDecoder(bytes.NewReader(data))
	if tok, err := dec.Token(); err != nil {
		return gallery, err
	} else if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return gallery, fmt.Errorf("expected an object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return gallery, err
		}
		id, _ := tok.(string)
		var images []string
		if err := dec.Decode(&images); err != nil {
			return gallery, err
		}
		if _, dup := gallery.Images[id]; !dup {
			gallery.IDs = append(gallery.IDs, id)
		}
		gallery.Images[id] = images
	}
	if _, err := dec.Token(); err != nil {
		return gallery, err
	}
	return gallery, nil
}

func readDocument(dir, name string) ([]byte, error) {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err == nil {
		return data, nil
	}
	if !os.IsNotExist(err) {
		return nil, errors.WrapIO("read", path, err)
	}

	packed, zerr := os.ReadFile(path + constants.CompressedExt)
	if zerr != nil {
		if os.IsNotExist(zerr) {
			return nil, errors.NewNotFoundError("document", path)
		}
		return nil, errors.WrapIO("read", path+constants.CompressedExt, zerr)
	}
	data, err = decompressZstd(packed)
	if err != nil {
		return nil, errors.WrapResource("decompress", "document", name, err)
	}
	return data, nil
}
