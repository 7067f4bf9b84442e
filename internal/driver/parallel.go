package driver

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// SourceExt is the extension of mua source files.
const SourceExt = ".mua"

// ListSources returns the source files directly under dir, sorted by name.
func ListSources(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), SourceExt) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// CompileDir compiles every source file under dir with up to jobs workers.
// Each file gets an isolated pipeline; results come back in the same order
// as ListSources. The error covers I/O only; per-file compilation failures
// stay in each result's bag.
func CompileDir(ctx context.Context, dir string, opts Options, jobs int) ([]string, []*Result, error) {
	files, err := ListSources(dir)
	if err != nil {
		return nil, nil, err
	}

	results := make([]*Result, len(files))
	g, _ := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}

	for i, path := range files {
		g.Go(func() error {
			res, err := Compile(path, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return files, results, nil
}
