package batch

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// InputSuffix marks coverage tables inside scanned directories.
const InputSuffix = ".raspir.csv"

var inputSuffixes = []string{InputSuffix, InputSuffix + ".gz", InputSuffix + ".xz", InputSuffix + ".zst"}

// IsInput reports whether name carries a coverage-table suffix.
func IsInput(name string) bool {
	for _, s := range inputSuffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}

	return false
}

// Discover expands paths into input files. Files are kept as given;
// directories are scanned, without recursion, for coverage tables in name
// order.
func Discover(paths []string) ([]string, error) {
	var files []string

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, errors.Wrap(err, "batch: discover")
		}

		if !info.IsDir() {
			files = append(files, p)
			continue
		}

		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, errors.Wrapf(err, "batch: scan %s", p)
		}

		var found []string
		for _, e := range entries {
			if e.Type().IsRegular() && IsInput(e.Name()) {
				found = append(found, filepath.Join(p, e.Name()))
			}
		}

		sort.Strings(found)
		files = append(files, found...)
	}

	return files, nil
}
