package seed

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/goodnatureofminers/tainttrace-backend/internal/model"
	"github.com/goodnatureofminers/tainttrace-backend/internal/store"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSource struct {
	mu     sync.Mutex
	blocks map[uint64]*model.Block
	calls  int
}

func (f *fakeSource) FetchBlock(_ context.Context, height uint64) (*model.Block, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	block, ok := f.blocks[height]
	if !ok {
		return nil, fmt.Errorf("no block at height %d", height)
	}
	return block, nil
}

func (f *fakeSource) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeMetrics struct {
	mu        sync.Mutex
	outpoints int
}

func (m *fakeMetrics) ObserveBlock(error, time.Time) {}

func (m *fakeMetrics) AddOutpoints(n int) {
	m.mu.Lock()
	m.outpoints += n
	m.mu.Unlock()
}

func newStore(t *testing.T) *store.TaintStore {
	t.Helper()
	st, err := store.Open(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, st.Close())
	})
	return st
}

func coinbaseBlock(height uint64, txid string, outputs ...model.TxOutput) *model.Block {
	return &model.Block{
		Network:   model.Mainnet,
		Height:    height,
		Hash:      fmt.Sprintf("hash-%d", height),
		Timestamp: time.Unix(1231006505, 0).UTC(),
		Txs: []model.Transaction{
			{
				TxID:    txid,
				Inputs:  []model.TxInput{{IsCoinbase: true}},
				Outputs: outputs,
			},
		},
	}
}

func TestBuilder_materializesSeeds(t *testing.T) {
	st := newStore(t)
	source := &fakeSource{blocks: map[uint64]*model.Block{
		0: coinbaseBlock(0, "cb-0", model.TxOutput{Index: 0, Value: 5000000000, Address: "addr-0"}),
		1: coinbaseBlock(1, "cb-1", model.TxOutput{Index: 0, Value: 5000000000, Address: "addr-1"}),
	}}
	metrics := &fakeMetrics{}

	b, err := NewBuilderWithHeights(st, source, metrics, zap.NewNop(), []uint64{0, 1}, nil)
	require.NoError(t, err)
	require.NoError(t, b.Run(context.Background()))

	for i, txid := range []string{"cb-0", "cb-1"} {
		out, err := st.GetOutpoint(txid, 0)
		require.NoError(t, err)
		require.Equal(t, uint32(0), out.Degree)
		require.Equal(t, uint64(i), out.Height)

		rec, err := st.GetTaint(fmt.Sprintf("addr-%d", i))
		require.NoError(t, err)
		require.Equal(t, uint32(0), rec.Degree)
		require.Empty(t, rec.Path)
		require.Equal(t, rec.Address, rec.SeedAddress)
	}

	marker, err := st.GetSeedMarker()
	require.NoError(t, err)
	require.Equal(t, uint64(2), marker.OutpointCount)
	require.Equal(t, 2, metrics.outpoints)
}

func TestBuilder_idempotent(t *testing.T) {
	st := newStore(t)
	source := &fakeSource{blocks: map[uint64]*model.Block{
		0: coinbaseBlock(0, "cb-0", model.TxOutput{Index: 0, Value: 5000000000, Address: "addr-0"}),
	}}

	b, err := NewBuilderWithHeights(st, source, &fakeMetrics{}, zap.NewNop(), []uint64{0}, nil)
	require.NoError(t, err)
	require.NoError(t, b.Run(context.Background()))
	fetched := source.callCount()

	// The marker turns every later run into a single point read.
	require.NoError(t, b.Run(context.Background()))
	require.Equal(t, fetched, source.callCount())
}

func TestBuilder_nonStandardScriptSkipsAddress(t *testing.T) {
	st := newStore(t)
	source := &fakeSource{blocks: map[uint64]*model.Block{
		5: coinbaseBlock(5, "cb-5", model.TxOutput{Index: 0, Value: 5000000000, Address: ""}),
	}}

	b, err := NewBuilderWithHeights(st, source, &fakeMetrics{}, zap.NewNop(), []uint64{5}, nil)
	require.NoError(t, err)
	require.NoError(t, b.Run(context.Background()))

	// The node is authoritative: no address write, but the outpoint is
	// still degree 0.
	out, err := st.GetOutpoint("cb-5", 0)
	require.NoError(t, err)
	require.Equal(t, uint32(0), out.Degree)
}

func TestBuilder_fallbackAddressesForceSeeded(t *testing.T) {
	st := newStore(t)
	source := &fakeSource{blocks: map[uint64]*model.Block{
		0: coinbaseBlock(0, "cb-0", model.TxOutput{Index: 0, Value: 5000000000, Address: ""}),
	}}
	fallbacks := map[uint64]string{0: "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"}

	b, err := NewBuilderWithHeights(st, source, &fakeMetrics{}, zap.NewNop(), []uint64{0}, fallbacks)
	require.NoError(t, err)
	require.NoError(t, b.Run(context.Background()))

	rec, err := st.GetTaint("1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa")
	require.NoError(t, err)
	require.Equal(t, uint32(0), rec.Degree)
	require.Empty(t, rec.Path)
}

func TestBuilder_failureLeavesMarkerUnset(t *testing.T) {
	st := newStore(t)
	source := &fakeSource{blocks: map[uint64]*model.Block{}}

	b, err := NewBuilderWithHeights(st, source, &fakeMetrics{}, zap.NewNop(), []uint64{9}, nil)
	require.NoError(t, err)
	require.Error(t, b.Run(context.Background()))

	_, err = st.GetSeedMarker()
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestLoadSet(t *testing.T) {
	st := newStore(t)
	require.NoError(t, st.PutTaint(model.TaintRecord{Address: "seed-a", SeedAddress: "seed-a", Degree: 0}))
	require.NoError(t, st.PutTaint(model.TaintRecord{Address: "tainted-b", SeedAddress: "seed-a", Degree: 2}))

	set, err := LoadSet(st)
	require.NoError(t, err)
	require.Equal(t, 1, set.Len())
	require.True(t, set.Contains("seed-a"))
	require.False(t, set.Contains("tainted-b"))
	require.False(t, set.Contains("unknown"))
}

func TestHeights(t *testing.T) {
	heights := Heights()
	require.NotEmpty(t, heights)

	// Ascending, unique, and anchored at the earliest blocks.
	require.Equal(t, uint64(0), heights[0])
	for i := 1; i < len(heights); i++ {
		require.Greater(t, heights[i], heights[i-1])
	}
	require.Greater(t, len(heights), 20000)
	require.Less(t, len(heights), 23000)
}
