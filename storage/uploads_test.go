package storage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestSaveWritesBytesWithTimestampName(t *testing.T) {
	u, err := NewUploads(filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)
	u.now = fixedClock(time.UnixMilli(1700000000123))

	content := []byte("%PDF-1.4\n%fake receipt\n")
	sf, err := u.Save(bytes.NewReader(content), "scan of receipt.PDF")
	require.NoError(t, err)

	assert.Equal(t, "1700000000123.PDF", sf.Name)
	assert.Equal(t, "scan of receipt.PDF", sf.OriginalName)
	assert.Equal(t, int64(len(content)), sf.Size)
	assert.Equal(t, "application/pdf", sf.ContentType)

	onDisk, err := os.ReadFile(filepath.Join(u.Dir, sf.Name))
	require.NoError(t, err)
	assert.Equal(t, content, onDisk)
	assert.Equal(t, "/uploads/1700000000123.PDF", u.URLFor(sf.Name))
}

func TestSaveWithoutExtension(t *testing.T) {
	u, err := NewUploads(t.TempDir())
	require.NoError(t, err)
	u.now = fixedClock(time.UnixMilli(42))

	sf, err := u.Save(strings.NewReader("plain"), "receipt")
	require.NoError(t, err)
	assert.Equal(t, "42", sf.Name)
	assert.True(t, strings.HasPrefix(sf.ContentType, "text/plain"))
}

func TestSaveSameMillisecondDoesNotCollide(t *testing.T) {
	u, err := NewUploads(t.TempDir())
	require.NoError(t, err)
	u.now = fixedClock(time.UnixMilli(1000))

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		names = map[string]bool{}
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sf, err := u.Save(strings.NewReader("x"), "a.png")
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			names[sf.Name] = true
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Len(t, names, 20)
}

func TestSaveSkipsExistingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "5000.jpg"), []byte("old"), 0o644))

	u, err := NewUploads(dir)
	require.NoError(t, err)
	u.now = fixedClock(time.UnixMilli(5000))

	sf, err := u.Save(strings.NewReader("new"), "photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, "5001.jpg", sf.Name)

	old, err := os.ReadFile(filepath.Join(dir, "5000.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(old), "existing files are never overwritten")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestSaveRemovesPartialFileOnError(t *testing.T) {
	dir := t.TempDir()
	u, err := NewUploads(dir)
	require.NoError(t, err)

	_, err = u.Save(failingReader{}, "a.png")
	require.ErrorContains(t, err, "connection reset")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestNewUploadsFailsOnFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	_, err := NewUploads(filepath.Join(file, "uploads"))
	assert.Error(t, err)
}
