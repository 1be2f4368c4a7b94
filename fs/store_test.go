package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/wxhist"
	"github.com/fwojciec/wxhist/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(day int, temp string) *wxhist.DayRecord {
	return &wxhist.DayRecord{
		Date:   time.Date(2015, time.January, day, 0, 0, 0, 0, time.UTC),
		Header: []string{"Time (EET)", "Temp."},
		Rows:   [][]string{{"12:20 AM", temp}},
	}
}

func TestFileName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "EFHK2015.txt", fs.FileName("EFHK", 2015))
}

// Story: Atomic File Storage
// The store writes to a temp file and renames it on commit

func TestFileStore_SaveWritesToTempFile(t *testing.T) {
	t.Parallel()

	// Given a store targeting a directory
	base := t.TempDir()
	store := fs.NewFileStore(base, "EFHK2015.txt")

	// When I save a record
	err := store.Save(context.Background(), record(1, "3.0"))

	// Then no error occurs
	require.NoError(t, err)

	// And the temp file exists
	_, err = os.Stat(filepath.Join(base, "EFHK2015.txt.tmp"))
	require.NoError(t, err, "temp file should exist")

	// And the final file does not exist yet
	_, err = os.Stat(filepath.Join(base, "EFHK2015.txt"))
	assert.True(t, os.IsNotExist(err), "final file should not exist until commit")
}

func TestFileStore_CommitWritesOneRecordPerLine(t *testing.T) {
	t.Parallel()

	// Given a store with two saved records
	base := t.TempDir()
	store := fs.NewFileStore(base, "EFHK2015.txt")
	require.NoError(t, store.Save(context.Background(), record(1, "3.0")))
	require.NoError(t, store.Save(context.Background(), record(2, "-1.5")))

	// When I commit
	err := store.Commit()

	// Then the final file holds both records, one per line
	require.NoError(t, err)
	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t,
		"Time (EET),Temp.<br />12:20 AM,3.0<br />\n"+
			"Time (EET),Temp.<br />12:20 AM,-1.5<br />\n",
		string(data))

	// And the temp file is gone
	_, err = os.Stat(filepath.Join(base, "EFHK2015.txt.tmp"))
	assert.True(t, os.IsNotExist(err), "temp file should be removed after commit")
}

func TestFileStore_CommitWithoutRecordsCreatesEmptyFile(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewFileStore(filepath.Join(base, "out"), "EFHK2015.txt")

	err := store.Commit()

	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(base, "out", "EFHK2015.txt"))
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestFileStore_CommitReplacesExistingFile(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	final := filepath.Join(base, "EFHK2015.txt")
	require.NoError(t, os.WriteFile(final, []byte("old"), 0644))

	store := fs.NewFileStore(base, "EFHK2015.txt")
	require.NoError(t, store.Save(context.Background(), record(1, "3.0")))
	require.NoError(t, store.Commit())

	data, err := os.ReadFile(final)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "old")
}

func TestFileStore_AbortCleansUpTempFile(t *testing.T) {
	t.Parallel()

	// Given a store with a saved record
	base := t.TempDir()
	store := fs.NewFileStore(base, "EFHK2015.txt")
	require.NoError(t, store.Save(context.Background(), record(1, "3.0")))

	// When I abort
	err := store.Abort()

	// Then neither file exists
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(base, "EFHK2015.txt.tmp"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(base, "EFHK2015.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestFileStore_AbortWithoutSaveIsNoop(t *testing.T) {
	t.Parallel()

	store := fs.NewFileStore(t.TempDir(), "EFHK2015.txt")

	assert.NoError(t, store.Abort())
}

func TestFileStore_SaveRejectsNilRecord(t *testing.T) {
	t.Parallel()

	store := fs.NewFileStore(t.TempDir(), "EFHK2015.txt")

	err := store.Save(context.Background(), nil)

	assert.Equal(t, wxhist.EINVALID, wxhist.ErrorCode(err))
}
