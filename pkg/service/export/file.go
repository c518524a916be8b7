package export

import (
	"context"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
)

// File writes reports into a local directory
type File struct {
	dir string
}

func NewFile(dir string) *File {
	return &File{dir: dir}
}

func (f *File) Put(ctx context.Context, name string, data []byte) (string, error) {
	if err := os.MkdirAll(f.dir, 0o750); err != nil {
		return "", goerr.Wrap(err, "failed to create export directory", goerr.V("dir", f.dir))
	}

	p := filepath.Join(f.dir, name)
	if err := os.WriteFile(p, data, 0o600); err != nil {
		return "", goerr.Wrap(err, "failed to write report file", goerr.V("path", p))
	}
	return p, nil
}
