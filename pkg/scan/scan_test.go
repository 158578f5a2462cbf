package scan

import (
	"strconv"
	"testing"
)

func TestScanner_TokenSequence(t *testing.T) {
	tests := []struct {
		name string
		line string
		opts []Option
		want []string
	}{
		{
			name: "plain words",
			line: "set mode fast",
			want: []string{"set", "mode", "fast"},
		},
		{
			name: "leading and trailing separators",
			line: " \t hello  world \r\n",
			want: []string{"hello", "world"},
		},
		{
			name: "single token no trailing separator",
			line: "help",
			want: []string{"help"},
		},
		{
			name: "empty line",
			line: "",
			want: nil,
		},
		{
			name: "all separators",
			line: " \t\t  \r\n",
			want: nil,
		},
		{
			name: "custom separators",
			line: "a,b,,c",
			opts: []Option{WithSeparators(",")},
			want: []string{"a", "b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.line, tt.opts...)
			for i, want := range tt.want {
				tok, ok := s.Token()
				if !ok {
					t.Fatalf("token %d: expected %q, got none", i, want)
				}
				if tok != want {
					t.Errorf("token %d: expected %q, got %q", i, want, tok)
				}
			}
			// Exhaustion is sticky: repeated calls keep reporting no token.
			for i := 0; i < 3; i++ {
				tok, ok := s.Token()
				if ok || tok != "" {
					t.Errorf("after exhaustion call %d: got %q, ok=%v", i, tok, ok)
				}
			}
		})
	}
}

func TestScanner_RestKeepsLeadingSeparators(t *testing.T) {
	s := New("A 3.5 7")
	tok, ok := s.Token()
	if !ok || tok != "A" {
		t.Fatalf("expected command token A, got %q ok=%v", tok, ok)
	}
	if got := s.Rest(); got != " 3.5 7" {
		t.Errorf("expected rest %q, got %q", " 3.5 7", got)
	}
}

func TestScanner_RestAfterExhaustion(t *testing.T) {
	s := New("one")
	s.Token()
	if got := s.Rest(); got != "" {
		t.Errorf("expected empty rest, got %q", got)
	}
}

func TestScanner_Reset(t *testing.T) {
	s := New("first")
	s.Token()
	s.Reset("second line")
	tok, ok := s.Token()
	if !ok || tok != "second" {
		t.Errorf("after reset expected %q, got %q ok=%v", "second", tok, ok)
	}
}

func TestScanner_Int(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   int
		wantOK bool
	}{
		{name: "decimal", line: "42", want: 42, wantOK: true},
		{name: "negative", line: "-7", want: -7, wantOK: true},
		{name: "hex prefix", line: "0x10", want: 16, wantOK: true},
		{name: "octal prefix", line: "010", want: 8, wantOK: true},
		{name: "binary prefix", line: "0b101", want: 5, wantOK: true},
		{name: "no token", line: "   ", want: 0, wantOK: false},
		// ok still reports true: the token was present, conversion is not
		// separately signalled.
		{name: "malformed token", line: "abc", want: 0, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := New(tt.line).Int()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Int() = (%d, %v), expected (%d, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestScanner_Uint(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   uint
		wantOK bool
	}{
		{name: "decimal", line: "42", want: 42, wantOK: true},
		{name: "hex prefix", line: "0xff", want: 255, wantOK: true},
		{name: "no token", line: "", want: 0, wantOK: false},
		{name: "negative is malformed", line: "-1", want: 0, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := New(tt.line).Uint()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Uint() = (%d, %v), expected (%d, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestScanner_Float(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   float64
		wantOK bool
	}{
		{name: "plain", line: "3.5", want: 3.5, wantOK: true},
		{name: "exponent", line: "1.5e2", want: 150, wantOK: true},
		{name: "integer form", line: "7", want: 7, wantOK: true},
		{name: "no token", line: " \t ", want: 0, wantOK: false},
		{name: "malformed token", line: "fast", want: 0, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := New(tt.line).Float()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Float() = (%g, %v), expected (%g, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestScanner_NumericRoundTrip(t *testing.T) {
	for _, v := range []int{0, 1, -1, 123456, -987654} {
		got, ok := New(strconv.Itoa(v)).Int()
		if !ok || got != v {
			t.Errorf("int round trip for %d: got %d ok=%v", v, got, ok)
		}
	}
	for _, v := range []float64{0.5, 3.5, -2.25, 1e10} {
		got, ok := New(strconv.FormatFloat(v, 'g', -1, 64)).Float()
		if !ok || got != v {
			t.Errorf("float round trip for %g: got %g ok=%v", v, got, ok)
		}
	}
}

func TestScanner_MixedConsumption(t *testing.T) {
	// Handlers interleave token and numeric pulls against one scanner.
	s := New("move 10 -3 fast")
	if tok, ok := s.Token(); !ok || tok != "move" {
		t.Fatalf("expected move, got %q ok=%v", tok, ok)
	}
	if v, ok := s.Int(); !ok || v != 10 {
		t.Fatalf("expected 10, got %d ok=%v", v, ok)
	}
	if v, ok := s.Int(); !ok || v != -3 {
		t.Fatalf("expected -3, got %d ok=%v", v, ok)
	}
	if tok, ok := s.Token(); !ok || tok != "fast" {
		t.Fatalf("expected fast, got %q ok=%v", tok, ok)
	}
	if _, ok := s.Token(); ok {
		t.Fatal("expected exhaustion after last token")
	}
}
