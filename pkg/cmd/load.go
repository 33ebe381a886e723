package cmd

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/c9s/outliers/pkg/dataset"
)

// loadDatasets loads the named datasets concurrently and returns them in
// argument order, no names means the standard input. A name given more than
// once is loaded once and shares its dataset, so the standard input is read
// by a single goroutine.
func loadDatasets(ctx context.Context, loader *dataset.Loader, names []string) ([]*dataset.Dataset, error) {
	if len(names) == 0 {
		names = []string{dataset.Stdin}
	}

	var unique []string
	seen := make(map[string]int, len(names))
	for _, name := range names {
		if _, ok := seen[name]; !ok {
			seen[name] = len(unique)
			unique = append(unique, name)
		}
	}

	loaded := make([]*dataset.Dataset, len(unique))

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range unique {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			ds, err := loader.Load(name)
			if err != nil {
				return err
			}

			loaded[i] = ds
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	datasets := make([]*dataset.Dataset, len(names))
	for i, name := range names {
		datasets[i] = loaded[seen[name]]
	}

	return datasets, nil
}
