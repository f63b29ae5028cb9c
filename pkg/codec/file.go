package codec

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// TempName returns a unique hidden file name next to path ending in ext.
func TempName(path, ext string) string {
	return filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.NewString()+ext)
}

// WriteTemp streams write into a new temporary file next to path and
// returns its name. The caller renames it into place or removes it. On
// failure no temporary file is left behind.
func WriteTemp(path string, write func(io.Writer) error) (tmp string, err error) {
	tmp = TempName(path, ".tmp")

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	bw := bufio.NewWriter(f)
	if err = write(bw); err != nil {
		return "", err
	}
	if err = bw.Flush(); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return tmp, nil
}

// WriteFileAtomic writes a file by streaming into a uniquely named
// temporary file in the same directory and renaming it into place once
// write succeeds. On failure the temporary file is removed and path is
// left untouched.
func WriteFileAtomic(path string, write func(io.Writer) error) error {
	tmp, err := WriteTemp(path, write)
	if err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
