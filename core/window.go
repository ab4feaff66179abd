package core

import (
	"fmt"
	"iter"
	"math/rand"
	"time"
)

// Batch holds parallel windows and labels of equal length. Windows alias
// the source sequence and must not be mutated by consumers.
type Batch struct {
	Windows [][]float64
	Labels  []float64
}

// Len returns the number of (window, label) pairs in the batch.
func (b Batch) Len() int { return len(b.Labels) }

// windowPair is one (window, label) training example.
type windowPair struct {
	window []float64
	label  float64
}

// WindowedDataset derives fixed-length training windows with next-step
// labels from a sequence. Pairs pass through a bounded buffer shuffle
// before batching: only the most recent shuffleBuffer pending pairs are
// candidates for the next emission, trading full randomness for bounded
// memory. The dataset is restartable; every Batches iteration reshuffles
// from the same seed, so a given dataset is reproducible.
type WindowedDataset struct {
	values        []float64
	windowSize    int
	batchSize     int
	shuffleBuffer int
	seed          int64
}

// NewWindowedDataset validates inputs and builds a dataset. A seed of zero
// selects a time-based seed, captured once so the dataset stays
// reproducible across restarts.
func NewWindowedDataset(values []float64, windowSize, batchSize, shuffleBuffer int, seed int64) (*WindowedDataset, error) {
	if windowSize < 1 {
		return nil, fmt.Errorf("window size must be >= 1, got %d", windowSize)
	}
	if batchSize < 1 {
		return nil, fmt.Errorf("batch size must be >= 1, got %d", batchSize)
	}
	if shuffleBuffer < 1 {
		return nil, fmt.Errorf("shuffle buffer must be >= 1, got %d", shuffleBuffer)
	}
	if len(values) <= windowSize {
		return nil, fmt.Errorf("%w: %d observations, window size %d", ErrInsufficientData, len(values), windowSize)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &WindowedDataset{
		values:        values,
		windowSize:    windowSize,
		batchSize:     batchSize,
		shuffleBuffer: shuffleBuffer,
		seed:          seed,
	}, nil
}

// NumPairs returns the total number of (window, label) pairs the dataset
// produces: one per valid start offset.
func (d *WindowedDataset) NumPairs() int {
	return len(d.values) - d.windowSize
}

// Seed returns the effective shuffle seed.
func (d *WindowedDataset) Seed() int64 { return d.seed }

// Batches returns a lazy, restartable iteration over shuffled batches.
// Every pair appears exactly once per iteration; a trailing partial batch
// is emitted as-is.
func (d *WindowedDataset) Batches() iter.Seq[Batch] {
	return func(yield func(Batch) bool) {
		rng := rand.New(rand.NewSource(d.seed))
		buffer := make([]windowPair, 0, min(d.shuffleBuffer, d.NumPairs()))

		batch := Batch{}
		emit := func(p windowPair) bool {
			batch.Windows = append(batch.Windows, p.window)
			batch.Labels = append(batch.Labels, p.label)
			if batch.Len() == d.batchSize {
				if !yield(batch) {
					return false
				}
				batch = Batch{}
			}
			return true
		}

		// Stream pairs through the bounded shuffle buffer
		for i := 0; i < d.NumPairs(); i++ {
			p := windowPair{
				window: d.values[i : i+d.windowSize],
				label:  d.values[i+d.windowSize],
			}
			if len(buffer) < d.shuffleBuffer {
				buffer = append(buffer, p)
				continue
			}
			j := rng.Intn(len(buffer))
			out := buffer[j]
			buffer[j] = p
			if !emit(out) {
				return
			}
		}

		// Drain the remaining buffered pairs in random order
		for len(buffer) > 0 {
			j := rng.Intn(len(buffer))
			out := buffer[j]
			last := len(buffer) - 1
			buffer[j] = buffer[last]
			buffer = buffer[:last]
			if !emit(out) {
				return
			}
		}

		// Flush the trailing partial batch
		if batch.Len() > 0 {
			yield(batch)
		}
	}
}

// SlideWindows returns every fixed-length window of the sequence in start
// offset order, without labels. Used by the forecast path, which predicts
// one step past each window.
func SlideWindows(values []float64, windowSize int) ([][]float64, error) {
	if windowSize < 1 {
		return nil, fmt.Errorf("window size must be >= 1, got %d", windowSize)
	}
	if len(values) <= windowSize {
		return nil, fmt.Errorf("%w: %d observations, window size %d", ErrInsufficientData, len(values), windowSize)
	}
	windows := make([][]float64, 0, len(values)-windowSize)
	for i := 0; i+windowSize <= len(values)-1; i++ {
		windows = append(windows, values[i:i+windowSize])
	}
	return windows, nil
}
