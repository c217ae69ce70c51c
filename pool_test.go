package cvfolio

import (
	"runtime"
	"testing"
)

func TestNewExporterPool_ClampsSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		n    int
		want int
	}{
		{name: "positive", n: 3, want: 3},
		{name: "zero", n: 0, want: 1},
		{name: "negative", n: -5, want: 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := NewExporterPool(tt.n)
			defer p.Close()
			if got := p.Size(); got != tt.want {
				t.Errorf("Size() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExporterPool_AcquireRelease(t *testing.T) {
	t.Parallel()

	p := NewExporterPool(2)
	defer p.Close()

	first := p.Acquire()
	if first == nil {
		t.Fatal("Acquire() = nil")
	}
	second := p.Acquire()
	if second == nil {
		t.Fatal("second Acquire() = nil")
	}
	if first == second {
		t.Error("pool handed out the same exporter twice")
	}

	// A released exporter is reused instead of creating a third.
	p.Release(first)
	third := p.Acquire()
	if third != first {
		t.Error("Acquire() after Release() did not reuse the exporter")
	}

	p.Release(second)
	p.Release(third)
}

func TestExporterPool_ReleaseNil(t *testing.T) {
	t.Parallel()

	p := NewExporterPool(1)
	defer p.Close()

	// Must not panic or consume a slot.
	p.Release(nil)

	if exp := p.Acquire(); exp == nil {
		t.Fatal("Acquire() = nil after Release(nil)")
	}
}

func TestExporterPool_CloseIdempotent(t *testing.T) {
	t.Parallel()

	p := NewExporterPool(1)
	exp := p.Acquire()
	p.Release(exp)

	if err := p.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	// Releasing into a closed pool is a no-op, not a panic.
	p.Release(exp)
}

func TestResolvePoolSize(t *testing.T) {
	t.Parallel()

	procs := runtime.GOMAXPROCS(0)
	auto := procs / cpuDivisor
	if auto < MinPoolSize {
		auto = MinPoolSize
	}
	if auto > MaxPoolSize {
		auto = MaxPoolSize
	}

	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{name: "explicit wins", workers: 5, want: 5},
		{name: "explicit one", workers: 1, want: 1},
		{name: "auto from cpus", workers: 0, want: auto},
		{name: "negative falls back to auto", workers: -1, want: auto},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ResolvePoolSize(tt.workers); got != tt.want {
				t.Errorf("ResolvePoolSize(%d) = %d, want %d", tt.workers, got, tt.want)
			}
		})
	}
}
