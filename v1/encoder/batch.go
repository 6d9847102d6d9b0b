package encoder

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// EncodeBatch encodes reqs concurrently, at most Config.BatchConcurrency at a
// time. The result is index aligned with reqs. The first failure cancels the
// requests that have not started yet and is returned with its index.
func (e *EncoderClient) EncodeBatch(ctx context.Context, reqs []Request) ([][]byte, error) {
	out := make([][]byte, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.BatchConcurrency)

	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			b, err := e.EncodeContext(gctx, req.Route, req.Value)
			if err != nil {
				return fmt.Errorf("request %d (route %q): %w", i, req.Route, err)
			}
			out[i] = b
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
