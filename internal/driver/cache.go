package driver

import (
	"os"
	"path/filepath"

	"ori/internal/arccache"
)

// CacheStats summarizes the on-disk ArcIrCache at dir for the
// `cache status` subcommand.
type CacheStats struct {
	Dir       string
	Entries   int
	SizeBytes int64
}

// InspectCache walks dir's ArcIrCache directory and counts its entries,
// grounded on the teacher's cmd/surge cache-inspection helpers but
// trimmed to the single artifact kind this driver caches (C11's
// functions/arc_ir entries - there is no module-graph disk cache to
// report on here, see DESIGN.md).
func InspectCache(dir string) (CacheStats, error) {
	root := filepath.Join(dir, "functions", "arc_ir")
	stats := CacheStats{Dir: root}
	entries, err := os.ReadDir(root)
	if os.IsNotExist(err) {
		return stats, nil
	}
	if err != nil {
		return stats, err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		stats.Entries++
		stats.SizeBytes += info.Size()
	}
	return stats, nil
}

// ClearCache drops every cached ARC IR entry under dir.
func ClearCache(dir string) error {
	cache, err := arccache.Open(dir)
	if err != nil {
		return err
	}
	return cache.Clear()
}
