package scan

import (
	"strconv"
	"strings"
)

// DefaultSeparators is the token delimiter set used when no option overrides it.
const DefaultSeparators = " \t\r\n"

// Scanner walks one command line and hands out whitespace-delimited tokens.
// Each line gets its own Scanner; the cursor only moves forward until Reset.
// A Scanner is not safe for concurrent use.
type Scanner struct {
	buf  string
	cur  int
	seps string
}

type Option func(*Scanner)

// WithSeparators replaces the delimiter set for this scanner.
func WithSeparators(seps string) Option {
	return func(s *Scanner) {
		if seps != "" {
			s.seps = seps
		}
	}
}

func New(line string, opts ...Option) *Scanner {
	s := &Scanner{
		buf:  line,
		seps: DefaultSeparators,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reset replaces the buffer and rewinds the cursor to the start.
func (s *Scanner) Reset(line string) {
	s.buf = line
	s.cur = 0
}

// Token returns the next maximal run of non-separator characters.
// It reports false when only separators (or nothing) remain; the cursor is
// left untouched in that case, so calling Token again keeps reporting false.
func (s *Scanner) Token() (string, bool) {
	start := s.cur
	for start < len(s.buf) && s.isSep(s.buf[start]) {
		start++
	}
	if start == len(s.buf) {
		return "", false
	}
	end := start
	for end < len(s.buf) && !s.isSep(s.buf[end]) {
		end++
	}
	s.cur = end
	return s.buf[start:end], true
}

// Int pulls the next token and converts it to an int. Base is auto-detected
// from the prefix (0x, 0o, 0b, leading 0 for octal). The bool reports whether
// a token was present, not whether conversion succeeded: a malformed token
// still reports true and yields zero.
func (s *Scanner) Int() (int, bool) {
	tok, ok := s.Token()
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseInt(tok, 0, 0)
	if err != nil {
		return 0, true
	}
	return int(v), true
}

// Uint is Int for unsigned values. Same token-presence contract.
func (s *Scanner) Uint() (uint, bool) {
	tok, ok := s.Token()
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseUint(tok, 0, 0)
	if err != nil {
		return 0, true
	}
	return uint(v), true
}

// Float pulls the next token and converts it to a float64. Same
// token-presence contract as Int.
func (s *Scanner) Float() (float64, bool) {
	tok, ok := s.Token()
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, true
	}
	return v, true
}

// Rest returns everything after the cursor, leading separators included.
func (s *Scanner) Rest() string {
	return s.buf[s.cur:]
}

func (s *Scanner) isSep(c byte) bool {
	return strings.IndexByte(s.seps, c) >= 0
}
