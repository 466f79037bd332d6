package olrpaths

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusStats(t *testing.T) {
	reg := prometheus.NewRegistry()
	st, err := NewPrometheusStats(reg)
	require.NoError(t, err)

	st.IncNoShortestPathFound()
	st.IncNoShortestPathFound()
	st.ObserveDecode(true)
	st.ObserveDecode(false)
	st.ObserveDecode(false)

	assert.Equal(t, 2.0, testutil.ToFloat64(st.noShortestPathFound))
	assert.Equal(t, 1.0, testutil.ToFloat64(st.decodeTotal.WithLabelValues("success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(st.decodeTotal.WithLabelValues("failure")))

	// Second registration in the same registry clashes
	_, err = NewPrometheusStats(reg)
	assert.Error(t, err)
}

func TestMultiStats(t *testing.T) {
	reg := prometheus.NewRegistry()
	promStats, err := NewPrometheusStats(reg)
	require.NoError(t, err)
	local := &Stats{}

	net := newTestNetwork(t)
	pc := NewPathsConnector(net.graph, MultiStats{local, promStats})
	_, err = pc.ConnectCandidates(
		[]LocationReferencePoint{{DistanceToNextPoint: 100}, {}},
		[][]EdgeVector{{{net.e1}}, {{net.e9}}},
	)
	require.Error(t, err)

	assert.Equal(t, uint64(1), local.NoShortestPathFound())
	assert.Equal(t, 1.0, testutil.ToFloat64(promStats.noShortestPathFound))
}
