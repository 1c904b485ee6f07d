package courses

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// saveUploadedImage writes src into dir under name. When a file with that
// name already exists, the new file is saved under "<uuid>-<name>" so the
// existing upload is never overwritten.
func saveUploadedImage(dir, name string, src io.Reader) (string, error) {
	target := name
	if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
		target = fmt.Sprintf("%s-%s", uuid.New(), name)
	}

	dst, err := os.Create(filepath.Join(dir, target))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return target, nil
}
