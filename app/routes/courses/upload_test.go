package courses

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveUploadedImageFirstUploadKeepsName(t *testing.T) {
	dir := t.TempDir()

	name, err := saveUploadedImage(dir, "welding.png", strings.NewReader("image-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "welding.png", name)

	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))
}

func TestSaveUploadedImageCollisionGetsUniquePrefix(t *testing.T) {
	dir := t.TempDir()

	first, err := saveUploadedImage(dir, "course.png", strings.NewReader("first"))
	require.NoError(t, err)
	second, err := saveUploadedImage(dir, "course.png", strings.NewReader("second"))
	require.NoError(t, err)

	assert.Equal(t, "course.png", first)
	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasSuffix(second, "-course.png"))

	// The original upload is untouched.
	data, err := os.ReadFile(filepath.Join(dir, first))
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))

	data, err = os.ReadFile(filepath.Join(dir, second))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}
