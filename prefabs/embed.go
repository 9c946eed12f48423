package prefabs

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

//go:embed *.yaml
var PrefabsFS embed.FS

var (
	diskMu   sync.RWMutex
	diskRoot = "prefabs"
)

// SetDiskRoot points disk overrides at dir. An empty dir disables them.
func SetDiskRoot(dir string) {
	diskMu.Lock()
	defer diskMu.Unlock()
	diskRoot = dir
}

// DiskRoot returns the directory checked for prefab overrides.
func DiskRoot() string {
	diskMu.RLock()
	defer diskMu.RUnlock()
	return diskRoot
}

// Load returns a prefab's yaml, preferring the copy on disk so tuning can be
// edited without a rebuild.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if path, ok := diskPath(clean); ok {
		if data, err := os.ReadFile(path); err == nil {
			return data, nil
		}
	}
	return PrefabsFS.ReadFile(clean)
}

// LoadScript returns a tengo script by name, with the same disk override as
// Load.
func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if path, ok := diskPath(clean); ok {
		if data, err := os.ReadFile(path); err == nil {
			return data, nil
		}
	}
	data, err := ScriptsFS.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load script %s: %w", name, err)
	}
	return data, nil
}

func ModTime(name string) (time.Time, bool) {
	path, ok := diskPath(cleanPrefabPath(name))
	if !ok {
		return time.Time{}, false
	}
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// Names lists the embedded prefab files in lexical order.
func Names() []string {
	matches, err := fs.Glob(PrefabsFS, "*.yaml")
	if err != nil {
		return nil
	}
	sort.Strings(matches)
	return matches
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		s = after
	}
	if filepath.Ext(s) == "" {
		s += ".yaml"
	}
	return s
}

func cleanScriptPath(path string) string {
	if path == "" {
		return ""
	}

	s := filepath.ToSlash(path)

	if after, ok := strings.CutPrefix(s, "prefabs/scripts/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}

	if filepath.Ext(s) == "" {
		s += ".tengo"
	}

	return fmt.Sprintf("scripts/%s", s)
}

func diskPath(clean string) (string, bool) {
	root := DiskRoot()
	if root == "" || clean == "" {
		return "", false
	}
	return filepath.Join(root, filepath.FromSlash(clean)), true
}
