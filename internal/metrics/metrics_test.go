package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func delta(t *testing.T, collector prometheus.Collector, observe func()) float64 {
	t.Helper()

	before := testutil.ToFloat64(collector)
	observe()
	after := testutil.ToFloat64(collector)
	return after - before
}

func TestScannerRecords(t *testing.T) {
	m := NewScanner("testnet")
	start := time.Now().Add(-time.Second)

	if inc := delta(t, scannerBlocksTotal.WithLabelValues("testnet", "success"), func() {
		m.ObserveBlock(nil, 100, 7, start)
	}); inc != 1 {
		t.Fatalf("expected block counter increment, got %v", inc)
	}

	if errInc := delta(t, scannerCommitsTotal.WithLabelValues("testnet", "error"), func() {
		m.ObserveCommit(errors.New("boom"), 5, start)
	}); errInc != 1 {
		t.Fatalf("expected commit error counter increment, got %v", errInc)
	}

	if inc := delta(t, scannerTaintedOutputs.WithLabelValues("testnet"), func() {
		m.AddTaintedOutputs(3)
	}); inc != 3 {
		t.Fatalf("expected tainted outputs increment 3, got %v", inc)
	}

	m.SetBlocksBehind(42)
	if got := testutil.ToFloat64(scannerBlocksBehind.WithLabelValues("testnet")); got != 42 {
		t.Fatalf("expected blocks behind gauge 42, got %v", got)
	}

	m.AddTaintingTxs(1)
	m.AddTaintedAddresses(2)
}

func TestSeedBuilderRecords(t *testing.T) {
	m := NewSeedBuilder("")
	start := time.Now().Add(-500 * time.Millisecond)

	if inc := delta(t, seedBlocksTotal.WithLabelValues("unknown", "error"), func() {
		m.ObserveBlock(errors.New("fail"), start)
	}); inc != 1 {
		t.Fatalf("expected seed block error increment, got %v", inc)
	}

	if inc := delta(t, seedOutpointsTotal.WithLabelValues("unknown"), func() {
		m.AddOutpoints(4)
	}); inc != 4 {
		t.Fatalf("expected seed outpoint increment 4, got %v", inc)
	}
}

func TestRPCClientRecords(t *testing.T) {
	m := NewRPCClient("")
	start := time.Now().Add(-200 * time.Millisecond)

	if inc := delta(t, rpcRequestsTotal.WithLabelValues("call", "unknown", "success"), func() {
		m.Observe("call", nil, start)
	}); inc != 1 {
		t.Fatalf("expected rpc call counter increment, got %v", inc)
	}

	m.Observe("call", errors.New("oops"), start)
}
