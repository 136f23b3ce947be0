// Package lsystem generates 3D plant geometry from a small textual rule
// language. Rule lines rewrite uppercase symbols (an L-system), and the
// final symbol stream drives a 3D turtle that emits branch segments and
// leaf points.
package lsystem

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Construction defaults, applied when the corresponding Config field is
// left zero.
const (
	DefaultBufferCapacity = 1 << 16
	DefaultAngleDegrees   = float32(22.5)
	DefaultStepDistance   = float32(1)
)

// Config describes one grammar. Rules holds one definition per line; blank
// lines and lines starting with '#' are skipped.
type Config struct {
	Axiom          string
	Rules          []string
	BufferCapacity int
	DefaultAngle   float32 // degrees, for rotation commands without a bound parameter
	DefaultStep    float32 // distance, for move commands without a bound parameter
	Debug          bool
}

// Request drives one generation run.
//
// Seed 0 asks for a non-reproducible entropy-seeded run; any other value is
// a reproducible seed. A zero-valued Orientation is treated as unset and
// replaced with the identity rotation.
type Request struct {
	Iterations  int
	Seed        int64
	Params      map[byte]float32 // parameter letter -> value
	Orientation rl.Quaternion
	Position    rl.Vector3
}

// System owns a parsed rule table and the two rewrite buffers. A System is
// safe for repeated Generate calls from one goroutine; concurrent callers
// need one System each.
type System struct {
	axiom        []byte
	rules        table
	rw           *rewriter
	defaultAngle float32
	defaultStep  float32
	log          *slog.Logger
}

// New parses every rule line eagerly and fails on the first malformed or
// duplicate rule.
func New(cfg Config) (*System, error) {
	if cfg.BufferCapacity < 0 {
		return nil, fmt.Errorf("buffer capacity must be positive, got %d", cfg.BufferCapacity)
	}
	if cfg.BufferCapacity == 0 {
		cfg.BufferCapacity = DefaultBufferCapacity
	}
	if cfg.DefaultAngle == 0 {
		cfg.DefaultAngle = DefaultAngleDegrees
	}
	if cfg.DefaultStep == 0 {
		cfg.DefaultStep = DefaultStepDistance
	}

	if strings.TrimSpace(cfg.Axiom) == "" {
		return nil, fmt.Errorf("axiom must not be empty")
	}
	axiomScanner := &scanner{src: cfg.Axiom}
	axiom, err := axiomScanner.parseReplacement(false)
	if err != nil {
		return nil, fmt.Errorf("axiom: %w", err)
	}
	if len(axiom) == 0 {
		return nil, fmt.Errorf("axiom must not be empty")
	}
	if len(axiom) > cfg.BufferCapacity {
		return nil, fmt.Errorf("axiom of %d symbols: %w (capacity %d)", len(axiom), ErrCapacity, cfg.BufferCapacity)
	}

	sys := &System{
		axiom:        axiom,
		rw:           newRewriter(cfg.BufferCapacity),
		defaultAngle: cfg.DefaultAngle,
		defaultStep:  cfg.DefaultStep,
		log:          newLogger(cfg.Debug),
	}
	for _, line := range cfg.Rules {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		lhs, r, err := parseRule(line)
		if err != nil {
			return nil, err
		}
		if err := sys.rules.set(lhs, r); err != nil {
			return nil, err
		}
	}
	sys.log.Debug("grammar ready",
		"axiom", string(axiom),
		"rules", sys.rules.defined(),
		"capacity", cfg.BufferCapacity)
	return sys, nil
}

// Generate rewrites the axiom for req.Iterations passes, then interprets
// the final buffer into geometry. On error no partial geometry is returned.
func (s *System) Generate(req Request) (*Result, error) {
	if req.Iterations < 0 {
		return nil, fmt.Errorf("iterations must be >= 0, got %d", req.Iterations)
	}

	rng := newRNG(req.Seed)
	final, err := s.rw.run(s.axiom, &s.rules, req.Iterations, rng, s.log)
	if err != nil {
		return nil, err
	}

	res, err := interpret(final, interpreterConfig{
		defaultAngle: s.defaultAngle,
		defaultStep:  s.defaultStep,
		params:       req.Params,
		orientation:  req.Orientation,
		position:     req.Position,
	})
	if err != nil {
		return nil, err
	}
	s.log.Debug("generation complete",
		"iterations", req.Iterations,
		"symbols", len(final),
		"segments", len(res.Segments),
		"leaves", len(res.Leaves))
	return res, nil
}

func newLogger(debug bool) *slog.Logger {
	if !debug {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
