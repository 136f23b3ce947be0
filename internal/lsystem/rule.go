package lsystem

import (
	"fmt"
	"math/rand/v2"
)

// A rule rewrites one uppercase symbol into either a constant replacement or
// a weighted choice between several replacements. Exactly one of the two
// fields is set; the zero value means "no rule" and the symbol rewrites to
// itself.
type rule struct {
	constant []byte
	weighted *sampler
}

func (r *rule) defined() bool {
	return r.constant != nil || r.weighted != nil
}

// table maps the 26 uppercase symbols to their rules.
type table struct {
	rules [26]rule
}

func (t *table) set(lhs byte, r rule) error {
	idx := lhs - 'A'
	if t.rules[idx].defined() {
		return fmt.Errorf("duplicate rule for symbol %q", string(lhs))
	}
	t.rules[idx] = r
	return nil
}

func (t *table) defined() int {
	n := 0
	for i := range t.rules {
		if t.rules[i].defined() {
			n++
		}
	}
	return n
}

// replacement returns the expansion for sym, sampling weighted rules with
// rng. ok is false when sym has no rule and should be copied through.
func (t *table) replacement(sym byte, rng *rand.Rand) (repl []byte, ok bool) {
	r := &t.rules[sym-'A']
	switch {
	case r.constant != nil:
		return r.constant, true
	case r.weighted != nil:
		return r.weighted.pick(rng), true
	default:
		return nil, false
	}
}

// scanner walks a single rule line byte by byte. Rule text is ASCII;
// anything outside the alphabet is a parse error anyway, so no rune
// decoding is needed.
type scanner struct {
	src string
	pos int
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.src) && (s.src[s.pos] == ' ' || s.src[s.pos] == '\t') {
		s.pos++
	}
}

func (s *scanner) peek() (byte, bool) {
	if s.pos >= len(s.src) {
		return 0, false
	}
	return s.src[s.pos], true
}

func (s *scanner) errf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s at column %d in rule %q", msg, s.pos+1, s.src)
}

// parseRule parses one non-comment rule line of the form
//
//	A = <replacement>
//	A = <weight> <replacement>, <weight> <replacement>, ...
//
// accepting "->" and "<-" as alternative assignment glyphs.
func parseRule(line string) (byte, rule, error) {
	s := &scanner{src: line}

	s.skipSpace()
	lhs, ok := s.peek()
	if !ok || lhs < 'A' || lhs > 'Z' {
		return 0, rule{}, s.errf("expected an uppercase symbol on the left-hand side")
	}
	s.pos++

	s.skipSpace()
	if err := s.consumeAssignment(); err != nil {
		return 0, rule{}, err
	}

	s.skipSpace()
	c, ok := s.peek()
	if ok && c >= '0' && c <= '9' {
		r, err := s.parseWeightedBody()
		return lhs, r, err
	}

	repl, err := s.parseReplacement(false)
	if err != nil {
		return 0, rule{}, err
	}
	return lhs, rule{constant: repl}, nil
}

func (s *scanner) consumeAssignment() error {
	c, ok := s.peek()
	if !ok {
		return s.errf("expected an assignment glyph")
	}
	switch c {
	case '=':
		s.pos++
		return nil
	case '-':
		if s.pos+1 < len(s.src) && s.src[s.pos+1] == '>' {
			s.pos += 2
			return nil
		}
	case '<':
		if s.pos+1 < len(s.src) && s.src[s.pos+1] == '-' {
			s.pos += 2
			return nil
		}
	}
	return s.errf("expected '=', '->' or '<-', found %q", string(c))
}

func (s *scanner) parseWeightedBody() (rule, error) {
	w := &sampler{}
	for {
		s.skipSpace()
		weight, err := s.parseWeight()
		if err != nil {
			return rule{}, err
		}
		repl, err := s.parseReplacement(true)
		if err != nil {
			return rule{}, err
		}
		if err := w.add(repl, float64(weight)); err != nil {
			return rule{}, s.errf("%v", err)
		}

		c, ok := s.peek()
		if !ok {
			return rule{weighted: w}, nil
		}
		if c != ',' {
			return rule{}, s.errf("expected ',' between weighted replacements, found %q", string(c))
		}
		s.pos++
	}
}

func (s *scanner) parseWeight() (int, error) {
	start := s.pos
	n := 0
	for {
		c, ok := s.peek()
		if !ok || c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
		s.pos++
	}
	if s.pos == start {
		return 0, s.errf("expected a weight before the replacement")
	}
	return n, nil
}

func isCommandGlyph(c byte) bool {
	switch c {
	case '+', '-', '^', 'v', '<', '>':
		return true
	}
	return false
}

// parseReplacement reads a replacement string: uppercase symbols, command
// glyphs and balanced brackets, each optionally followed by a "(x)"
// parameter binding. When inList is true a ',' terminates the string.
func (s *scanner) parseReplacement(inList bool) ([]byte, error) {
	out := make([]byte, 0, 8)
	depth := 0
	for {
		s.skipSpace()
		c, ok := s.peek()
		if !ok || (inList && c == ',') {
			break
		}
		switch {
		case c >= 'A' && c <= 'Z', isCommandGlyph(c):
			out = append(out, c)
			s.pos++
		case c == '[':
			depth++
			out = append(out, c)
			s.pos++
		case c == ']':
			depth--
			if depth < 0 {
				return nil, s.errf("unbalanced ']'")
			}
			out = append(out, c)
			s.pos++
		default:
			return nil, s.errf("unexpected character %q in replacement", string(c))
		}

		// A parameter binding must follow its symbol immediately.
		if p, ok := s.peek(); ok && p == '(' {
			param, err := s.parseParam()
			if err != nil {
				return nil, err
			}
			out = append(out, '(', param, ')')
		}
	}
	if depth != 0 {
		return nil, s.errf("unbalanced '['")
	}
	return out, nil
}

func (s *scanner) parseParam() (byte, error) {
	s.pos++ // consume '('
	c, ok := s.peek()
	if !ok || c < 'a' || c > 'z' {
		return 0, s.errf("parameter must be a single lowercase letter")
	}
	s.pos++
	if rp, ok := s.peek(); !ok || rp != ')' {
		return 0, s.errf("unterminated parameter binding")
	}
	s.pos++
	return c, nil
}
