package dataset

import (
	"errors"
	"io/fs"
)

// Overlay layers a user data directory over the embedded data: a dataset
// file present in dir wins, anything missing comes from DefaultFS.
func Overlay(dir fs.FS) fs.FS {
	return &overlayFS{layers: []fs.FS{dir, DefaultFS()}}
}

type overlayFS struct {
	layers []fs.FS
}

// Open implements fs.FS.
func (o *overlayFS) Open(name string) (fs.File, error) {
	var lastErr error
	for _, layer := range o.layers {
		f, err := layer.Open(name)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

func layersOf(fsys fs.FS) []fs.FS {
	if o, ok := fsys.(*overlayFS); ok {
		return o.layers
	}
	return []fs.FS{fsys}
}
