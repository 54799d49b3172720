package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	projectA = "7e1b5c1a-0d53-4c8c-9a3f-3b2b0a6e9d10"
	projectB = "0f3c1d0e-2d6e-4f8e-8a43-5c1e7d9d4a21"
)

func TestExportArchive_SaveAndPath(t *testing.T) {
	a, err := NewExportArchive(filepath.Join(t.TempDir(), "exports"), time.Hour)
	require.NoError(t, err)

	name, err := a.Save(projectA, "PipeTrak_Plant-7_area_2026-03-04.csv", []byte("a,b\n"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, "_PipeTrak_Plant-7_area_2026-03-04.csv"))
	assert.Equal(t, "PipeTrak_Plant-7_area_2026-03-04.csv", DownloadName(name))

	p, err := a.Path(projectA, name)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(a.Dir(), projectA, name), p)
	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", string(data))

	other, err := a.Save(projectA, "PipeTrak_Plant-7_area_2026-03-04.csv", []byte("x"))
	require.NoError(t, err)
	assert.NotEqual(t, name, other)
}

func TestExportArchive_ScopedToProject(t *testing.T) {
	a, err := NewExportArchive(t.TempDir(), time.Hour)
	require.NoError(t, err)

	name, err := a.Save(projectA, "report.csv", []byte("a"))
	require.NoError(t, err)

	_, err = a.Path(projectB, name)
	assert.ErrorIs(t, err, ErrArchiveNotFound)

	_, err = a.Save("../escape", "report.csv", []byte("a"))
	assert.Error(t, err)
	_, err = a.Path("..", name)
	assert.ErrorIs(t, err, ErrArchiveNotFound)
}

func TestExportArchive_PathRejectsTraversal(t *testing.T) {
	a, err := NewExportArchive(t.TempDir(), time.Hour)
	require.NoError(t, err)

	for _, name := range []string{"", "../etc/passwd", "a/b.csv", `..\x`, ".hidden", "missing.csv"} {
		_, err := a.Path(projectA, name)
		assert.ErrorIs(t, err, ErrArchiveNotFound, name)
	}
}

func TestExportArchive_Purge(t *testing.T) {
	dir := t.TempDir()
	a, err := NewExportArchive(dir, 24*time.Hour)
	require.NoError(t, err)

	oldName, err := a.Save(projectA, "old.pdf", []byte("old"))
	require.NoError(t, err)
	freshName, err := a.Save(projectA, "fresh.pdf", []byte("fresh"))
	require.NoError(t, err)
	lonely, err := a.Save(projectB, "old.csv", []byte("old"))
	require.NoError(t, err)

	past := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, projectA, oldName), past, past))
	require.NoError(t, os.Chtimes(filepath.Join(dir, projectB, lonely), past, past))

	n, err := a.Purge(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = a.Path(projectA, oldName)
	assert.ErrorIs(t, err, ErrArchiveNotFound)
	_, err = a.Path(projectA, freshName)
	assert.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, projectB))
	assert.True(t, os.IsNotExist(err), "emptied project directory is removed")
	_, err = os.Stat(dir)
	assert.NoError(t, err)

	require.NoError(t, a.RunPurge(context.Background()))
}

func TestNewExportArchive_EmptyDir(t *testing.T) {
	_, err := NewExportArchive("", time.Hour)
	assert.Error(t, err)
}
