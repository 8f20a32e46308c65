package wavload

import "golang.org/x/sync/errgroup"

// loadAllConcurrent fans Load out across goroutines, one per path, and
// writes each result into its own slot of out — no shared mutable state
// between goroutines beyond the disjoint index each owns.
func loadAllConcurrent(paths []string, out [][]float32) {
	var g errgroup.Group
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			out[i] = Load(p)
			return nil
		})
	}
	_ = g.Wait()
}
