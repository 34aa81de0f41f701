// Package batch runs many independent box operations on a bounded pool of
// workers. Results always come back in input order.
package batch

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/gammazero/workerpool"

	"github.com/OguzhanE/saltybox/pkg/logger"
)

// Sealer encrypts a single message. nacl.SimpleBox satisfies it.
type Sealer interface {
	Box(message []byte) ([]byte, error)
}

// Opener decrypts a single message. nacl.SimpleBox and nacl.SealedBox
// satisfy it.
type Opener interface {
	Open(ciphertext []byte) ([]byte, error)
}

// SealerFunc adapts a plain function to Sealer
type SealerFunc func(message []byte) ([]byte, error)

// Box calls f(message)
func (f SealerFunc) Box(message []byte) ([]byte, error) {
	return f(message)
}

// OpenerFunc adapts a plain function to Opener
type OpenerFunc func(ciphertext []byte) ([]byte, error)

// Open calls f(ciphertext)
func (f OpenerFunc) Open(ciphertext []byte) ([]byte, error) {
	return f(ciphertext)
}

// ItemError reports which input failed
type ItemError struct {
	Index int
	Err   error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("item %d: %v", e.Index, e.Err)
}

// Unwrap returns the underlying error
func (e *ItemError) Unwrap() error {
	return e.Err
}

// SealAll boxes every message with s using at most maxWorkers goroutines.
// maxWorkers < 1 means runtime.NumCPU(). When several items fail, the error
// of the lowest index is returned and no results are.
func SealAll(s Sealer, messages [][]byte, maxWorkers int) ([][]byte, error) {
	return run(s.Box, messages, maxWorkers)
}

// OpenAll opens every ciphertext with o. See SealAll.
func OpenAll(o Opener, ciphertexts [][]byte, maxWorkers int) ([][]byte, error) {
	return run(o.Open, ciphertexts, maxWorkers)
}

func run(fn func([]byte) ([]byte, error), inputs [][]byte, maxWorkers int) ([][]byte, error) {
	if maxWorkers < 1 {
		maxWorkers = runtime.NumCPU()
	}
	results := make([][]byte, len(inputs))
	if len(inputs) == 0 {
		return results, nil
	}

	var (
		mu       sync.Mutex
		firstErr *ItemError
	)
	wp := workerpool.New(maxWorkers)
	for i := range inputs {
		i := i
		wp.Submit(func() {
			out, err := fn(inputs[i])
			if err != nil {
				mu.Lock()
				if firstErr == nil || i < firstErr.Index {
					firstErr = &ItemError{Index: i, Err: err}
				}
				mu.Unlock()
				return
			}
			results[i] = out
		})
	}
	wp.StopWait()

	if firstErr != nil {
		logger.Sugar.Debug("Batch failed at item ", firstErr.Index, ": ", firstErr.Err)
		return nil, firstErr
	}
	logger.Sugar.Debug("Batch finished, items: ", len(inputs), " workers: ", maxWorkers)
	return results, nil
}
