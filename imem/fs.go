package imem

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// CreateFS is a file system that can also create files.
type CreateFS interface {
	fs.FS
	// Create creates or truncates a file for writing.
	Create(name string) (file io.WriteCloser, err error)
}

// DirFS is a CreateFS rooted at a host directory.
type DirFS string

var _ CreateFS = DirFS("")

// Open opens a file for reading.
func (dir DirFS) Open(name string) (fs.File, error) {
	return os.DirFS(string(dir)).Open(name)
}

// Create creates or truncates a file for writing.
func (dir DirFS) Create(name string) (file io.WriteCloser, err error) {
	if !fs.ValidPath(name) {
		err = &fs.PathError{Op: "create", Path: name, Err: fs.ErrInvalid}
		return
	}

	file, err = os.Create(filepath.Join(string(dir), filepath.FromSlash(name)))
	return
}

// Save writes the image to name in fsys.
func Save(fsys CreateFS, name string, img *Image) (err error) {
	file, err := fsys.Create(name)
	if err != nil {
		return
	}
	defer func() {
		close_err := file.Close()
		if err == nil {
			err = close_err
		}
	}()

	_, err = img.WriteTo(file)
	return
}
