// Package backup copies container files aside before they are modified and
// restores them on demand. A one-shot ".original" backup is taken the first
// time a file is seen; timestamped backups pile up per save.
package backup

import (
	"fmt"
	"sort"
	"strings"
	"time"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

const (
	backupDirName  = "backup"
	originalSuffix = ".original"
	stampLayout    = "20060102_150405"
)

// Manager handles backups for one container directory. Backups live in a
// "backup" subdirectory next to the containers.
type Manager struct {
	fs  billy.Filesystem
	dir string
}

// NewManager returns a manager rooted at the container directory.
func NewManager(fs billy.Filesystem, containerDir string) *Manager {
	return &Manager{fs: fs, dir: containerDir}
}

func (m *Manager) backupDir() string { return m.fs.Join(m.dir, backupDirName) }

// CreateOriginal takes the one-shot pristine backup of a container file. It
// reports whether a new backup was written; an existing original is never
// overwritten.
func (m *Manager) CreateOriginal(name string) (string, bool, error) {
	target := m.fs.Join(m.backupDir(), name+originalSuffix)
	if _, err := m.fs.Stat(target); err == nil {
		return target, false, nil
	}
	if err := m.copyFile(m.fs.Join(m.dir, name), target); err != nil {
		return "", false, err
	}
	return target, true, nil
}

// Create takes a timestamped backup of a container file.
func (m *Manager) Create(name string, at time.Time) (string, error) {
	target := m.fs.Join(m.backupDir(), name+"."+at.Format(stampLayout))
	if err := m.copyFile(m.fs.Join(m.dir, name), target); err != nil {
		return "", err
	}
	return target, nil
}

// List returns backup file names for a container, newest first. An empty
// container name lists every backup.
func (m *Manager) List(name string) ([]string, error) {
	infos, err := m.fs.ReadDir(m.backupDir())
	if err != nil {
		return nil, nil // no backup dir yet
	}

	type stamped struct {
		name string
		mod  time.Time
	}
	var found []stamped
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		if name != "" && !strings.HasPrefix(info.Name(), name) {
			continue
		}
		found = append(found, stamped{name: info.Name(), mod: info.ModTime()})
	}
	sort.Slice(found, func(i, j int) bool { return found[i].mod.After(found[j].mod) })

	out := make([]string, len(found))
	for i, f := range found {
		out[i] = f.name
	}
	return out, nil
}

// Latest returns the newest backup for a container, or "" if none exists.
func (m *Manager) Latest(name string) (string, error) {
	backups, err := m.List(name)
	if err != nil || len(backups) == 0 {
		return "", err
	}
	return backups[0], nil
}

// Original returns the pristine backup name for a container, or "" if it was
// never taken.
func (m *Manager) Original(name string) string {
	target := m.fs.Join(m.backupDir(), name+originalSuffix)
	if _, err := m.fs.Stat(target); err != nil {
		return ""
	}
	return target
}

// Restore copies a backup over its container file.
func (m *Manager) Restore(backupName, containerName string) error {
	return m.copyFile(m.fs.Join(m.backupDir(), backupName), m.fs.Join(m.dir, containerName))
}

// RestoreOriginal puts the pristine backup back in place.
func (m *Manager) RestoreOriginal(containerName string) error {
	source := m.Original(containerName)
	if source == "" {
		return fmt.Errorf("no original backup for %s", containerName)
	}
	return m.copyFile(source, m.fs.Join(m.dir, containerName))
}

func (m *Manager) copyFile(from, to string) error {
	data, err := util.ReadFile(m.fs, from)
	if err != nil {
		return fmt.Errorf("read %s: %w", from, err)
	}
	if err := util.WriteFile(m.fs, to, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", to, err)
	}
	return nil
}
