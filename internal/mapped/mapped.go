// Package mapped gives read-only access to files through memory mapping.
package mapped

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// File is a read-only view of a file's contents.
type File struct {
	data mmap.MMap
}

// Open maps the file at path. Empty files are not mapped; their view is
// empty.
func Open(path string) (*File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mapped: open %s: %w", path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("mapped: stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("mapped: %s is a directory", path)
	}
	if info.Size() == 0 {
		return &File{}, nil
	}

	data, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mapped: mmap %s: %w", path, err)
	}
	return &File{data: data}, nil
}

// Bytes returns the mapped contents. The slice is invalid after Close.
func (f *File) Bytes() []byte {
	return f.data
}

// Len returns the size of the mapped contents.
func (f *File) Len() int {
	return len(f.data)
}

// Close unmaps the file.
func (f *File) Close() error {
	if f.data == nil {
		return nil
	}
	err := f.data.Unmap()
	f.data = nil
	return err
}

// ReadFile returns a copy of the file's contents.
func ReadFile(path string) ([]byte, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	out := make([]byte, f.Len())
	copy(out, f.Bytes())
	return out, nil
}
