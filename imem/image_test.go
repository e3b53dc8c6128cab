package imem

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"regexp"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
)

func TestImageWriteTo(t *testing.T) {
	assert := assert.New(t)

	var img Image
	for n := range img {
		img[n] = uint32(n) * 0x01010101
	}
	img[1] = 0xffffffff

	buff := &bytes.Buffer{}
	n, err := img.WriteTo(buff)
	assert.NoError(err)
	assert.Equal(int64(DEPTH*11), n)

	lines := strings.Split(strings.TrimSuffix(buff.String(), "\n"), "\n")
	assert.Equal(DEPTH, len(lines))

	re := regexp.MustCompile(`^0x[0-9a-f]{8}$`)
	for _, line := range lines {
		assert.True(re.MatchString(line), line)
	}

	assert.Equal("0x00000000", lines[0])
	assert.Equal("0xffffffff", lines[1])
	assert.Equal("0x02020202", lines[2])
	assert.Equal("0xffffffff", lines[255])
}

// memFS is an in-memory CreateFS.
type memFS struct {
	fstest.MapFS
	fail error
}

type memFile struct {
	bytes.Buffer
	name string
	fsys *memFS
}

func (mf *memFile) Close() error {
	mf.fsys.MapFS[mf.name] = &fstest.MapFile{Data: mf.Bytes()}
	return mf.fsys.fail
}

func (mfs *memFS) Create(name string) (io.WriteCloser, error) {
	return &memFile{name: name, fsys: mfs}, nil
}

func TestSave(t *testing.T) {
	assert := assert.New(t)

	var img Image
	img[0] = 0x00110c00

	fsys := &memFS{MapFS: fstest.MapFS{}}
	err := Save(fsys, "instructions.txt", &img)
	assert.NoError(err)

	data, err := fs.ReadFile(fsys, "instructions.txt")
	assert.NoError(err)
	assert.Equal(DEPTH*11, len(data))
	assert.True(strings.HasPrefix(string(data), "0x00110c00\n0x00000000\n"))
}

func TestSaveCloseError(t *testing.T) {
	assert := assert.New(t)

	bad := errors.New("disk full")
	fsys := &memFS{MapFS: fstest.MapFS{}, fail: bad}

	err := Save(fsys, "instructions.txt", &Image{})
	assert.ErrorIs(err, bad)
}

func TestDirFS(t *testing.T) {
	assert := assert.New(t)

	dir := DirFS(t.TempDir())

	img := Image{0x22428020}
	assert.NoError(Save(dir, "out.txt", &img))

	data, err := fs.ReadFile(dir, "out.txt")
	assert.NoError(err)
	assert.True(strings.HasPrefix(string(data), "0x22428020\n"))

	_, err = dir.Create("../escape.txt")
	assert.ErrorIs(err, fs.ErrInvalid)
}
