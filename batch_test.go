package olrpaths

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRecorder struct {
	ok   atomic.Int64
	fail atomic.Int64
}

func (cr *countingRecorder) ObserveDecode(ok bool) {
	if ok {
		cr.ok.Add(1)
		return
	}
	cr.fail.Add(1)
}

func TestDecodeBatch(t *testing.T) {
	graph := loadSampleGraph(t)
	reqs, err := LoadRequests("./testdata/requests.yaml")
	require.NoError(t, err)
	refs, err := reqs.Resolve(graph)
	require.NoError(t, err)

	stats := &Stats{}
	recorder := &countingRecorder{}
	pc := NewPathsConnector(graph, stats)
	results, err := DecodeBatch(context.Background(), pc, refs, 2, recorder)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "lr-main", results[0].ReferenceID)
	require.NoError(t, results[0].Err)
	// Real candidate [1] wins over the one starting with fake edge
	assert.Equal(t, []EdgeID{1, 3, 5}, results[0].Path[0].IDs())

	assert.Equal(t, "lr-broken", results[1].ReferenceID)
	assert.True(t, errors.Is(results[1].Err, ErrNoShortestPath))
	assert.Nil(t, results[1].Path)

	assert.Equal(t, int64(1), recorder.ok.Load())
	assert.Equal(t, int64(1), recorder.fail.Load())
	assert.Equal(t, uint64(1), stats.NoShortestPathFound())
}

func TestDecodeBatchCanceled(t *testing.T) {
	net := newTestNetwork(t)
	pc := NewPathsConnector(net.graph, nil)
	refs := []LocationReference{
		{ID: "a", Points: []LocationReferencePoint{{DistanceToNextPoint: 120}, {}}, Candidates: [][]EdgeVector{{{net.e1, net.e2}}, {{net.e2, net.e3}}}},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := DecodeBatch(ctx, pc, refs, 0, nil)
	assert.True(t, errors.Is(err, context.Canceled))

	results, err := DecodeBatch(context.Background(), pc, refs, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, []EdgeID{1, 2, 3}, results[0].Path[0].IDs())
}
