package file

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog/log"
)

const dirPerm = 0o755

// LocalStore implements port.FileStore on the local filesystem.
type LocalStore struct{}

func NewLocalStore() *LocalStore {
	return &LocalStore{}
}

func (s *LocalStore) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

func (s *LocalStore) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, err
}

func (s *LocalStore) EnsureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		err = fmt.Errorf("error creating directory %w", err)
		log.Error().Err(err).Str("dir", dir).Send()
		return err
	}

	log.Debug().Str("dir", dir).Msg("ensured output directory")

	return nil
}

func (s *LocalStore) WriteAtomic(path string, write func(w io.Writer) error) error {
	f, err := createTemp(filepath.Dir(path), filepath.Ext(path))
	if err != nil {
		return err
	}
	tmp := f.Name()

	if err := write(f); err != nil {
		_ = f.Close()
		RemoveTempFile(tmp)
		return err
	}

	if err := f.Close(); err != nil {
		RemoveTempFile(tmp)
		err = fmt.Errorf("error closing temp file %w", err)
		log.Error().Err(err).Str("path", tmp).Send()
		return err
	}

	if err := os.Rename(tmp, path); err != nil {
		RemoveTempFile(tmp)
		err = fmt.Errorf("error moving temp file into place %w", err)
		log.Error().Err(err).Str("path", path).Send()
		return err
	}

	log.Debug().Str("path", path).Msg("wrote file")

	return nil
}

// createTemp creates a hidden, uuid-named file in dir so the final rename stays on one filesystem.
func createTemp(dir, extension string) (*os.File, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	path := filepath.Join(dir, fmt.Sprintf(".%s%s.tmp", id.String(), extension))

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		err = fmt.Errorf("error creating temp file %w", err)
		log.Error().Err(err).Send()
		return nil, err
	}

	log.Debug().Str("path", f.Name()).Msg("created temp file")

	return f, nil
}

// RemoveTempFile removes a specified temporary file at the given path and logs success or failure.
func RemoveTempFile(path string) {
	err := os.Remove(path)
	if err != nil {
		log.Warn().Str("path", path).Err(err).Msg("could not clean up temp file")
		return
	}
	log.Debug().Str("path", path).Msg("cleaned up temp file")
}
