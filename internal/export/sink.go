package export

import (
	"context"
	"fmt"
	"io/fs"
	"os"
)

// Sink stores a rendered artifact under a name.
type Sink interface {
	Write(ctx context.Context, name string, data []byte) error
}

// FileSink writes artifacts to the local filesystem, truncating an existing
// destination in place. Symlinks are followed and an existing file keeps its
// mode; Perm applies only when the file is created.
type FileSink struct {
	Perm fs.FileMode
}

// NewFileSink returns a FileSink producing world-readable files.
func NewFileSink() *FileSink {
	return &FileSink{Perm: 0o644}
}

// Write creates or truncates path and writes data. The handle is closed on
// every path; a close failure is reported when the write itself succeeded.
func (s *FileSink) Write(ctx context.Context, path string, data []byte) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	perm := s.Perm
	if perm == 0 {
		perm = 0o644
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if _, err = f.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = f.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", path, err)
	}
	return nil
}
