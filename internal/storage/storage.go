package storage

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound: байтов по указанному пути нет (запись в БД при этом может существовать).
var ErrNotFound = errors.New("stored file not found")

// FileStore хранит байты загруженных файлов. Path, возвращаемый Save, это каноничный адрес
// файла, который пишется в метаданные и потом передаётся в Open/Remove.
type FileStore interface {
	Save(ctx context.Context, name string, data io.Reader) (path string, size int64, err error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Remove(ctx context.Context, path string) error
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
