// Package scan lists the picture files of a single directory.
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Extensions are the file extensions the viewer can decode.
var Extensions = mapset.NewSet(".jpg", ".jpeg", ".png", ".gif")

// FileItem is one picture found in a directory.
type FileItem struct {
	Path string
	Size int64
}

// FileItems is an ordered list of pictures.
type FileItems []FileItem

// Paths returns the paths of the items in order.
func (fi FileItems) Paths() []string {
	paths := make([]string, len(fi))
	for i, item := range fi {
		paths[i] = item.Path
	}
	return paths
}

// Directory lists the regular files directly inside dir whose base name
// matches the glob pattern. Matching is case-sensitive and subdirectories are
// not entered. Symlinks count when they point at a regular file. Names
// starting with a dot are hidden unless the pattern starts with one too.
// Items keep the order returned by the directory listing.
func Directory(dir, pattern string) (FileItems, error) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("unable to read directory '%s': %w", dir, err)
	}

	showHidden := strings.HasPrefix(pattern, ".")
	var items FileItems
	for _, entry := range entries {
		name := entry.Name()
		if !showHidden && strings.HasPrefix(name, ".") {
			continue
		}
		if ok, _ := filepath.Match(pattern, name); !ok {
			continue
		}
		path := filepath.Join(dir, name)
		info, ok := regularFile(path, entry)
		if !ok {
			continue
		}
		items = append(items, FileItem{
			Path: path,
			Size: info.Size(),
		})
	}
	return items, nil
}

// regularFile returns the file info of entry, following a symlink to its
// target. ok is false for directories, devices, dangling links and entries
// removed since the listing.
func regularFile(path string, entry fs.DirEntry) (fs.FileInfo, bool) {
	var (
		info fs.FileInfo
		err  error
	)
	switch {
	case entry.Type().IsRegular():
		info, err = entry.Info()
	case entry.Type()&fs.ModeSymlink != 0:
		info, err = os.Stat(path)
	default:
		return nil, false
	}
	if err != nil || !info.Mode().IsRegular() {
		return nil, false
	}
	return info, true
}

// IsImage checks if a file has one of the decodable extensions.
func IsImage(n string) bool {
	return Extensions.Contains(strings.ToLower(filepath.Ext(n)))
}
