package emit

import (
	"os"
	"path/filepath"

	"github.com/karnadigital/atlas/pkg/constants"
	"github.com/karnadigital/atlas/pkg/errors"
)

// batch stages files next to their destinations and renames them together.
type batch struct {
	dir     string
	pending []staged
}

type staged struct {
	temp, dest string
}

func newBatch(dir string) *batch {
	return &batch{dir: dir}
}

// add stages data for name.
func (b *batch) add(name string, data []byte) error {
	return b.addFunc(name, func(path string) error {
		return os.WriteFile(path, data, constants.FilePermissions)
	})
}

// addFunc stages a file produced by write, which receives the temp path.
func (b *batch) addFunc(name string, write func(path string) error) error {
	dest := target(b.dir, name)
	tmp, err := os.CreateTemp(filepath.Dir(dest), "."+filepath.Base(dest)+".*.tmp")
	if err != nil {
		return errors.WrapIO("create", "temp file", err)
	}
	tempPath := tmp.Name()
	_ = tmp.Close()
	b.pending = append(b.pending, staged{temp: tempPath, dest: dest})

	if err := write(tempPath); err != nil {
		return errors.WrapIO("write", name, err)
	}
	if err := os.Chmod(tempPath, constants.FilePermissions); err != nil {
		return errors.WrapIO("chmod", name, err)
	}
	return nil
}

// commit renames every staged file into place and returns the destinations.
func (b *batch) commit() ([]string, error) {
	files := make([]string, 0, len(b.pending))
	for i, s := range b.pending {
		if err := os.Rename(s.temp, s.dest); err != nil {
			b.pending = b.pending[i:]
			return nil, errors.WrapIO("move", s.dest, err)
		}
		files = append(files, s.dest)
	}
	b.pending = nil
	return files, nil
}

// abort removes whatever is still staged. It is a no-op after commit.
func (b *batch) abort() {
	for _, s := range b.pending {
		_ = os.Remove(s.temp)
	}
	b.pending = nil
}
