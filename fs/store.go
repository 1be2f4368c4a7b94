// Package fs provides file-based storage for day records.
package fs

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/wxhist"
)

// FileName returns the output file name for an airport and year.
// Example: EFHK, 2015 → EFHK2015.txt
func FileName(airport string, year int) string {
	return fmt.Sprintf("%s%d.txt", airport, year)
}

// Ensure FileStore implements wxhist.RecordStore at compile time.
var _ wxhist.RecordStore = (*FileStore)(nil)

// FileStore implements wxhist.RecordStore with atomic update semantics.
// Records are appended to name.tmp in dir, which is renamed to name on
// Commit. Records are written one per line.
type FileStore struct {
	dir  string
	name string

	file *os.File
	w    *bufio.Writer
}

// NewFileStore creates a new FileStore writing dir/name.
func NewFileStore(dir, name string) *FileStore {
	return &FileStore{
		dir:  dir,
		name: name,
	}
}

func (s *FileStore) tempPath() string {
	return filepath.Join(s.dir, s.name+".tmp")
}

// Path returns the path of the committed file.
func (s *FileStore) Path() string {
	return filepath.Join(s.dir, s.name)
}

func (s *FileStore) open() error {
	if s.file != nil {
		return nil
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}
	f, err := os.Create(s.tempPath())
	if err != nil {
		return err
	}
	s.file = f
	s.w = bufio.NewWriter(f)
	return nil
}

// Save appends a record to the temporary file.
func (s *FileStore) Save(ctx context.Context, rec *wxhist.DayRecord) error {
	if rec == nil {
		return wxhist.Errorf(wxhist.EINVALID, "day record required")
	}
	if err := s.open(); err != nil {
		return err
	}
	if _, err := s.w.WriteString(rec.String()); err != nil {
		return err
	}
	_, err := s.w.WriteString(wxhist.RecordSeparator)
	return err
}

// Commit flushes the temporary file and moves it to its final name. A store
// with no saved records commits an empty file.
func (s *FileStore) Commit() error {
	if err := s.open(); err != nil {
		return err
	}
	if err := s.w.Flush(); err != nil {
		return err
	}
	if err := s.close(); err != nil {
		return err
	}
	return os.Rename(s.tempPath(), s.Path())
}

// Abort discards the temporary file.
func (s *FileStore) Abort() error {
	_ = s.close()
	if err := os.Remove(s.tempPath()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *FileStore) close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	s.w = nil
	return err
}
