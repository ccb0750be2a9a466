package window

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"
)

// Errors returned by window operations.
var (
	ErrCapacity = errors.New("window: capacity must be positive")
	ErrColumns  = errors.New("window: column count must be positive")
	ErrShape    = errors.New("window: sample length does not match column count")
)

// monotonicEpoch anchors default timestamps to a process-local monotonic
// clock. Wall-clock adjustments never move timestamps backwards.
var monotonicEpoch = time.Now()

func monotonicNow() float64 {
	return time.Since(monotonicEpoch).Seconds()
}

// SlidingWindow is a fixed-capacity circular buffer of multivariate samples.
// Each retained row holds one float32 value per column plus a float64
// timestamp. All methods are safe for concurrent use.
type SlidingWindow struct {
	mu sync.Mutex

	capacity int
	columns  int

	buffer     []float32 // capacity*columns, row-major
	timestamps []float64 // capacity

	head  int // physical index of the oldest retained row
	count int // rows currently retained, 0..capacity
}

// New creates a sliding window retaining at most capacity rows of the given
// column count. Both dimensions must be positive; capacity 1 is valid and
// degenerates to "latest sample only".
func New(capacity, columns int) (*SlidingWindow, error) {
	if capacity <= 0 {
		return nil, ErrCapacity
	}
	if columns <= 0 {
		return nil, ErrColumns
	}

	return &SlidingWindow{
		capacity:   capacity,
		columns:    columns,
		buffer:     make([]float32, capacity*columns),
		timestamps: make([]float64, capacity),
	}, nil
}

// Append adds one sample row, stamped with a monotonic clock reading.
// When the window is full the oldest row is evicted. Non-finite values are
// stored as-is; detecting NaN/Inf is the consumer's responsibility.
func (w *SlidingWindow) Append(sample []float64) error {
	return w.AppendAt(sample, monotonicNow())
}

// AppendAt adds one sample row with an explicit timestamp.
func (w *SlidingWindow) AppendAt(sample []float64, timestamp float64) error {
	if len(sample) != w.columns {
		return fmt.Errorf("%w: got %d, want %d", ErrShape, len(sample), w.columns)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	var idx int
	if w.count < w.capacity {
		idx = (w.head + w.count) % w.capacity
		w.count++
	} else {
		idx = w.head
		w.head = (w.head + 1) % w.capacity
	}

	row := w.buffer[idx*w.columns : (idx+1)*w.columns]
	for i, v := range sample {
		row[i] = float32(v)
	}
	w.timestamps[idx] = timestamp

	return nil
}

// Snapshot returns an immutable chronological copy of the retained rows,
// oldest first. The copy is taken under the same lock as Append, so it never
// contains a torn row or bookkeeping inconsistent with the data.
func (w *SlidingWindow) Snapshot() *Frame {
	w.mu.Lock()
	defer w.mu.Unlock()

	f := &Frame{
		Rows:       w.count,
		Cols:       w.columns,
		Data:       make([]float64, w.count*w.columns),
		Timestamps: make([]float64, w.count),
	}

	for i := 0; i < w.count; i++ {
		src := (w.head + i) % w.capacity
		row := w.buffer[src*w.columns : (src+1)*w.columns]
		dst := f.Data[i*w.columns : (i+1)*w.columns]
		for j, v := range row {
			dst[j] = float64(v)
		}
		f.Timestamps[i] = w.timestamps[src]
	}

	return f
}

// Len returns the number of rows currently retained.
func (w *SlidingWindow) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count
}

// Cap returns the fixed capacity.
func (w *SlidingWindow) Cap() int { return w.capacity }

// Columns returns the fixed column count.
func (w *SlidingWindow) Columns() int { return w.columns }

// IsFull reports whether the window retains exactly Cap rows.
func (w *SlidingWindow) IsFull() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count == w.capacity
}

// Reset empties the window. Cell contents are NaN-filled so stale rows can
// never be mistaken for data before the next append overwrites them.
func (w *SlidingWindow) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.head = 0
	w.count = 0
	nan32 := float32(math.NaN())
	for i := range w.buffer {
		w.buffer[i] = nan32
	}
	for i := range w.timestamps {
		w.timestamps[i] = math.NaN()
	}
}
