package workers

import (
	"context"
	"testing"
	"time"
)

// mockWorker tracks lifecycle calls and the order they happened in.
type mockWorker struct {
	id         int
	startCount int
	stopCount  int
	order      *[]int
}

func (m *mockWorker) Start(_ context.Context) {
	m.startCount++
	if m.order != nil {
		*m.order = append(*m.order, m.id)
	}
}

func (m *mockWorker) Stop() {
	m.stopCount++
	if m.order != nil {
		*m.order = append(*m.order, -m.id)
	}
}

func TestWorkers_StartAll_AllWorkersAreStarted(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.StartAll(context.Background())

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.startCount != 1 {
			t.Errorf("worker[%d]: expected startCount=1, got %d", i, w.startCount)
		}
	}
}

func TestWorkers_StartAll_Empty(t *testing.T) {
	ws := &Workers{workers: []Worker{}}

	// Should not panic on empty workers list
	ws.StartAll(context.Background())
	ws.StopAll()
}

func TestWorkers_StartAll_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.StartAll(context.Background())
	ws.StopAll()
}

func TestWorkers_StopAll_ReverseOrder(t *testing.T) {
	order := []int{}
	w1 := &mockWorker{id: 1, order: &order}
	w2 := &mockWorker{id: 2, order: &order}
	w3 := &mockWorker{id: 3, order: &order}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.StartAll(context.Background())
	ws.StopAll()

	expected := []int{1, 2, 3, -3, -2, -1}
	if len(order) != len(expected) {
		t.Fatalf("expected %d lifecycle calls, got %d", len(expected), len(order))
	}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("expected order[%d]=%d, got %d", i, v, order[i])
		}
	}
}

// fakeJob records the interval it was started with.
type fakeJob struct {
	started  int
	stopped  int
	interval time.Duration
}

func (f *fakeJob) Start(_ context.Context, interval time.Duration) {
	f.started++
	f.interval = interval
}

func (f *fakeJob) Stop() {
	f.stopped++
}

func TestJobWorker_PassesConfiguredInterval(t *testing.T) {
	j := &fakeJob{}
	w := newJobWorker(j, 42*time.Second)

	w.Start(context.Background())
	w.Stop()

	if j.started != 1 || j.stopped != 1 {
		t.Errorf("expected one start and one stop, got %d/%d", j.started, j.stopped)
	}
	if j.interval != 42*time.Second {
		t.Errorf("expected interval 42s, got %v", j.interval)
	}
}
