package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"imageviewer/internal/config"
	"imageviewer/internal/recent"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommandC executes a cobra command and captures its output.
func executeCommandC(root *cobra.Command, args ...string) (string, string, error) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestRootHelp(t *testing.T) {
	stdout, stderr, err := executeCommandC(NewRootCmd(openStore), "--help")
	require.NoError(t, err, "stdout: %s, stderr: %s", stdout, stderr)
	assert.Contains(t, stdout, "Usage:")
	assert.Contains(t, stdout, "list")
	assert.Contains(t, stdout, "recent")
}

func TestListCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.jpg"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "B.JPG"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.png"), []byte("x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.jpg"), 0755))

	stdout, _, err := executeCommandC(NewRootCmd(openStore), "list", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, filepath.Join(dir, "a.jpg"))
	assert.NotContains(t, stdout, "B.JPG", "pattern is case-sensitive")
	assert.NotContains(t, stdout, "c.png")
	assert.NotContains(t, stdout, "sub.jpg")

	stdout, _, err = executeCommandC(NewRootCmd(openStore), "list", "--pattern", "*.png", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "c.png")

	stdout, _, err = executeCommandC(NewRootCmd(openStore), "list", "--pattern", "*.gif", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "No pictures")

	_, _, err = executeCommandC(NewRootCmd(openStore), "list", filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestFitCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"fit", "4000", "3000"}, "880x660"},
		{[]string{"fit", "3000", "4000"}, "660x880"},
		{[]string{"fit", "100", "100"}, "880x880"},
		{[]string{"fit", "--screen-height", "1000", "--margin", "0", "2000", "1000"}, "1000x500"},
	}
	for _, tt := range tests {
		stdout, _, err := executeCommandC(NewRootCmd(openStore), tt.args...)
		require.NoError(t, err, "%v", tt.args)
		assert.Equal(t, tt.want+"\n", stdout, "%v", tt.args)
	}

	_, _, err := executeCommandC(NewRootCmd(openStore), "fit", "0", "10")
	assert.Error(t, err)
	_, _, err = executeCommandC(NewRootCmd(openStore), "fit", "wide", "10")
	assert.Error(t, err)
	_, _, err = executeCommandC(NewRootCmd(openStore), "fit", "--margin", "2000", "10", "10")
	assert.Error(t, err)
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "good.png"), 40, 20)

	stdout, _, err := executeCommandC(NewRootCmd(openStore), "check", "--pattern", "*.png", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "OK\tgood.png\tpng\t40x20 -> 880x440")
	assert.Contains(t, stdout, "1 checked, 0 failed")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.png"), []byte("not a picture"), 0644))
	stdout, _, err = executeCommandC(NewRootCmd(openStore), "check", "--pattern", "*.png", dir)
	assert.Error(t, err)
	assert.Contains(t, stdout, "FAIL\tbad.png")
	assert.Contains(t, stdout, "2 checked, 1 failed")
}

func TestRecentCommands(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "recent.db")

	store, err := recent.Open(dbPath, 5, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, store.Add("/pics/old"))
	require.NoError(t, store.Add("/pics/new"))
	require.NoError(t, store.Close())

	stdout, _, err := executeCommandC(NewRootCmd(openStore), "recent", "--recent-db", dbPath)
	require.NoError(t, err)
	assert.Equal(t, "/pics/new\n/pics/old\n", stdout)

	stdout, _, err = executeCommandC(NewRootCmd(openStore), "recent", "clear", "--recent-db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "cleared")

	stdout, _, err = executeCommandC(NewRootCmd(openStore), "recent", "--recent-db", dbPath)
	require.NoError(t, err)
	assert.Empty(t, stdout)
}

func TestRecentOpenFailure(t *testing.T) {
	failing := func(*config.Config, zerolog.Logger) (*recent.Store, error) {
		return nil, os.ErrPermission
	}
	_, _, err := executeCommandC(NewRootCmd(failing), "recent")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrPermission)
}
