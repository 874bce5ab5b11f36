package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// DefaultURLPrefix is where the uploads directory is served.
const DefaultURLPrefix = "/uploads"

// maxNameAttempts bounds the search for a free stored name.
const maxNameAttempts = 1000

// StoredFile describes a file written by Save.
type StoredFile struct {
	Name         string
	OriginalName string
	Path         string
	Size         int64
	ContentType  string
}

// Uploads writes receipt files into a single directory and maps stored names
// to public URLs. Content is not inspected or limited.
type Uploads struct {
	Dir       string
	URLPrefix string

	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewUploads creates dir if needed.
func NewUploads(dir string) (*Uploads, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir %s: %w", dir, err)
	}
	return &Uploads{Dir: dir, URLPrefix: DefaultURLPrefix, now: time.Now}, nil
}

// Save writes r under a name built from the current unix milliseconds and
// the extension of originalName.
func (u *Uploads) Save(r io.Reader, originalName string) (StoredFile, error) {
	f, name, err := u.create(filepath.Ext(originalName))
	if err != nil {
		return StoredFile{}, err
	}
	dst := filepath.Join(u.Dir, name)

	size, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(dst)
		return StoredFile{}, fmt.Errorf("write upload %s: %w", name, err)
	}

	contentType := "application/octet-stream"
	if mt, err := mimetype.DetectFile(dst); err == nil {
		contentType = mt.String()
	}
	return StoredFile{
		Name:         name,
		OriginalName: originalName,
		Path:         dst,
		Size:         size,
		ContentType:  contentType,
	}, nil
}

// SaveFileHeader stores a file received as a multipart form part.
func (u *Uploads) SaveFileHeader(fh *multipart.FileHeader) (StoredFile, error) {
	src, err := fh.Open()
	if err != nil {
		return StoredFile{}, fmt.Errorf("open upload %s: %w", fh.Filename, err)
	}
	defer src.Close()
	return u.Save(src, fh.Filename)
}

// URLFor returns the public path of a stored file.
func (u *Uploads) URLFor(name string) string {
	return path.Join(u.URLPrefix, name)
}

// create opens a new file exclusively. Names come from a millisecond clock
// that never repeats within the process; a name already on disk is skipped.
func (u *Uploads) create(ext string) (*os.File, string, error) {
	for i := 0; i < maxNameAttempts; i++ {
		name := strconv.FormatInt(u.nextStamp(), 10) + ext
		f, err := os.OpenFile(filepath.Join(u.Dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, name, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, "", fmt.Errorf("create upload file: %w", err)
		}
	}
	return nil, "", fmt.Errorf("create upload file: no free name after %d attempts", maxNameAttempts)
}

func (u *Uploads) nextStamp() int64 {
	u.mu.Lock()
	defer u.mu.Unlock()
	now := time.Now
	if u.now != nil {
		now = u.now
	}
	stamp := now().UnixMilli()
	if stamp <= u.last {
		stamp = u.last + 1
	}
	u.last = stamp
	return stamp
}
