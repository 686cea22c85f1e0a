package hook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Load reads every *.hook.md file from the system and user hook directories,
// system directory first. Missing directories are treated as zero hooks.
// Invalid hooks are returned flagged, not dropped; only real I/O failures
// produce an error.
func Load(systemDir, userDir string) ([]Definition, error) {
	var defs []Definition

	systemDefs, err := loadDir(systemDir, TierSystem)
	if err != nil {
		return nil, err
	}
	defs = append(defs, systemDefs...)

	userDefs, err := loadDir(userDir, TierUser)
	if err != nil {
		return nil, err
	}
	defs = append(defs, userDefs...)

	return defs, nil
}

func loadDir(dir string, tier Tier) ([]Definition, error) {
	if dir == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read hook directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !IsHookFile(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	defs := make([]Definition, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read hook file %s: %w", path, err)
		}
		defs = append(defs, Parse(name, path, tier, data))
	}
	return defs, nil
}
