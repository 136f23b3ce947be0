package lsystem

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
)

// ErrCapacity reports that a rewrite pass would overflow the fixed buffer
// capacity chosen at construction. Generation length grows exponentially in
// the branching factor of the rules, so the ceiling is deliberate: callers
// pick iteration counts and capacity together.
var ErrCapacity = errors.New("generation buffer capacity exceeded")

// rewriter owns the two generation buffers. Each pass reads from buf and
// writes into alt, then the two are swapped by reference. The buffers never
// escape the rewriter, so one rewriter serves one goroutine.
type rewriter struct {
	buf []byte
	alt []byte
}

func newRewriter(capacity int) *rewriter {
	return &rewriter{
		buf: make([]byte, 0, capacity),
		alt: make([]byte, 0, capacity),
	}
}

func (rw *rewriter) capacity() int {
	return cap(rw.buf)
}

// run rewrites axiom for the given number of passes and returns the final
// buffer. The returned slice aliases rewriter state and is only valid until
// the next run.
func (rw *rewriter) run(axiom []byte, rules *table, passes int, rng *rand.Rand, log *slog.Logger) ([]byte, error) {
	if len(axiom) > rw.capacity() {
		return nil, fmt.Errorf("axiom of %d symbols: %w (capacity %d)", len(axiom), ErrCapacity, rw.capacity())
	}
	rw.buf = append(rw.buf[:0], axiom...)

	for pass := 1; pass <= passes; pass++ {
		out := rw.alt[:0]
		for _, sym := range rw.buf {
			if sym >= 'A' && sym <= 'Z' {
				if repl, ok := rules.replacement(sym, rng); ok {
					if len(out)+len(repl) > cap(out) {
						return nil, fmt.Errorf("pass %d: %w (capacity %d)", pass, ErrCapacity, cap(out))
					}
					out = append(out, repl...)
					continue
				}
			}
			if len(out)+1 > cap(out) {
				return nil, fmt.Errorf("pass %d: %w (capacity %d)", pass, ErrCapacity, cap(out))
			}
			out = append(out, sym)
		}
		rw.alt = rw.buf
		rw.buf = out
		log.Debug("rewrite pass", "pass", pass, "symbols", len(out))
	}
	return rw.buf, nil
}
