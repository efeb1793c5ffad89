package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
)

// Verify diffs a plan against the filesystem without writing anything. A
// missing file or divergent content is reported per path; the aggregate is
// returned so every divergence is visible in one run.
func (g *Generator) Verify(set *FileSet) error {
	var result *multierror.Error

	for _, f := range set.Files() {
		target := filepath.Join(g.root, filepath.FromSlash(f.Path))
		data, err := afero.ReadFile(g.fs, target)
		if err != nil {
			if os.IsNotExist(err) {
				result = multierror.Append(result, fmt.Errorf("%s: file should exist, but does not", f.Path))
				continue
			}
			result = multierror.Append(result, fmt.Errorf("read %s: %w", f.Path, err))
			continue
		}
		if diff := cmp.Diff(string(data), f.Content); diff != "" {
			result = multierror.Append(result, fmt.Errorf("%s would change:\n%s", f.Path, diff))
		}
	}

	return result.ErrorOrNil()
}
