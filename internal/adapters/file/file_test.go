package file

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExists(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "present.txt")
	require.NoError(t, os.WriteFile(present, []byte("x"), 0o644))

	s := NewLocalStore()

	ok, err := s.Exists(present)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Exists(filepath.Join(dir, "missing.txt"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEnsureDir(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		wantDir string
	}{
		{
			name:    "nested directories",
			path:    filepath.Join(dir, "a", "b", "c", "out.png"),
			wantDir: filepath.Join(dir, "a", "b", "c"),
		},
		{
			name:    "existing directory",
			path:    filepath.Join(dir, "out.png"),
			wantDir: dir,
		},
	}

	s := NewLocalStore()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, s.EnsureDir(tc.path))

			stat, err := os.Stat(tc.wantDir)
			require.NoError(t, err)
			assert.True(t, stat.IsDir())
		})
	}
}

func TestEnsureDirBareFileName(t *testing.T) {
	assert.NoError(t, NewLocalStore().EnsureDir("out.png"))
}

func TestEnsureDirBlockedByFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := NewLocalStore().EnsureDir(filepath.Join(blocker, "sub", "out.png"))
	assert.Error(t, err)
}

func TestWriteAtomic(t *testing.T) {
	tests := []struct {
		name     string
		existing []byte
		write    func(w io.Writer) error
		want     []byte
		wantErr  bool
	}{
		{
			name: "success",
			write: func(w io.Writer) error {
				_, err := w.Write([]byte("test\n"))
				return err
			},
			want: []byte("test\n"),
		},
		{
			name:     "replaces existing file",
			existing: []byte("old"),
			write: func(w io.Writer) error {
				_, err := w.Write([]byte("new"))
				return err
			},
			want: []byte("new"),
		},
		{
			name: "failed write leaves nothing behind",
			write: func(w io.Writer) error {
				_, _ = w.Write([]byte("partial"))
				return errors.New("mock error")
			},
			wantErr: true,
		},
		{
			name:     "failed write keeps existing file",
			existing: []byte("old"),
			write: func(w io.Writer) error {
				return errors.New("mock error")
			},
			want:    []byte("old"),
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "out.png")
			if tc.existing != nil {
				require.NoError(t, os.WriteFile(path, tc.existing, 0o644))
			}

			err := NewLocalStore().WriteAtomic(path, tc.write)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)

			if tc.want == nil {
				assert.Empty(t, entries)
				return
			}

			require.Len(t, entries, 1, "temp files must not be left behind")
			got, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestWriteAtomicMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.png")

	err := NewLocalStore().WriteAtomic(path, func(w io.Writer) error { return nil })
	assert.Error(t, err)
}

func TestRemoveTempFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tmp")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	RemoveTempFile(path)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	RemoveTempFile(path)
}
