package olrpaths

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DecodeResult is an outcome of decoding single location reference
type DecodeResult struct {
	ReferenceID string
	Path        []EdgeVector
	Err         error
}

// DecodeRecorder is notified once per decoded location reference
type DecodeRecorder interface {
	ObserveDecode(ok bool)
}

// DecodeBatch connects candidates of every location reference using at most `workers` goroutines.
//
// Results keep input order. Failure of single reference is stored in its result;
// only context cancellation stops the batch and is returned as error.
func DecodeBatch(ctx context.Context, pc *PathsConnector, refs []LocationReference, workers int, recorder DecodeRecorder) ([]DecodeResult, error) {
	if workers <= 0 {
		workers = 1
	}
	results := make([]DecodeResult, len(refs))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range refs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			ref := refs[i]
			path, err := pc.ConnectCandidates(ref.Points, ref.Candidates)
			results[i] = DecodeResult{
				ReferenceID: ref.ID,
				Path:        path,
				Err:         err,
			}
			if recorder != nil {
				recorder.ObserveDecode(err == nil)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
