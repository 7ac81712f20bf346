package measure

import (
	"errors"
	"testing"
)

func mustCandidate(t *testing.T, in string) *candidate {
	t.Helper()
	c, err := newCandidate(in)
	if err != nil {
		t.Fatalf("newCandidate(%q) error = %v", in, err)
	}
	return c
}

func TestNewCandidate(t *testing.T) {
	tests := []struct {
		input    string
		negative bool
		fields   []string
	}{
		{"1 3/8", false, []string{"1", "3/8"}},
		{"-1-3/8", true, []string{"1", "3/8"}},
		{"+ 3/8", false, []string{"3/8"}},
		{"  - 2   1/4 ", true, []string{"2", "1/4"}},
		{"3 / 16", false, []string{"3", "/", "16"}},
		{"-", true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c := mustCandidate(t, tt.input)
			if c.negative != tt.negative {
				t.Errorf("negative = %v, want %v", c.negative, tt.negative)
			}
			if len(c.fields) != len(tt.fields) {
				t.Fatalf("fields = %q, want %q", c.fields, tt.fields)
			}
			for i := range tt.fields {
				if c.fields[i] != tt.fields[i] {
					t.Errorf("fields[%d] = %q, want %q", i, c.fields[i], tt.fields[i])
				}
			}
		})
	}
}

func TestStrategies_Order(t *testing.T) {
	expected := []string{"decimal", "mixed", "fraction", "collapsed"}
	if len(strategies) != len(expected) {
		t.Fatalf("got %d strategies, want %d", len(strategies), len(expected))
	}
	for i, name := range expected {
		if strategies[i].name != name {
			t.Errorf("strategies[%d] = %s, want %s", i, strategies[i].name, name)
		}
	}
}

func TestStrategies_Applicability(t *testing.T) {
	// which strategy claims the input first
	tests := []struct {
		input    string
		strategy string
	}{
		{"2.25", "decimal"},
		{"-3", "decimal"},
		{"1 3/8", "mixed"},
		{"1-3/8", "mixed"},
		{"3/16", "fraction"},
		{"3 / 16", "collapsed"},
		{"abc", "collapsed"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c := mustCandidate(t, tt.input)
			for _, s := range strategies {
				if _, err := s.parse(c); errors.Is(err, errNotApplicable) {
					continue
				}
				if s.name != tt.strategy {
					t.Errorf("input claimed by %s, want %s", s.name, tt.strategy)
				}
				return
			}
			t.Errorf("no strategy claimed %q", tt.input)
		})
	}
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		input string
		value float64
		ok    bool
	}{
		{"3", 3, true},
		{"-2.5", -2.5, true},
		{".125", 0.125, true},
		{"+7", 7, true},
		{"", 0, false},
		{"3/8", 0, false},
		{"1 2", 0, false},
		{" 1", 0, false},
		{"12px", 0, false},
		{"inf", 0, false},
		{"NaN", 0, false},
		{"0x10", 0, false},
		{"--1", 0, false},
		{"5.", 5, true},
		{"0.", 0, true},
		{".", 0, false},
		{"5..", 0, false},
		{"5. ", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, ok := parseDecimal(tt.input)
			if ok != tt.ok {
				t.Fatalf("parseDecimal(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if v != tt.value {
				t.Errorf("parseDecimal(%q) = %v, want %v", tt.input, v, tt.value)
			}
		})
	}
}

func TestParseSimpleFraction(t *testing.T) {
	tests := []struct {
		input string
		value float64
		err   error
	}{
		{"3/8", 0.375, nil},
		{" 3 / 8 ", 0.375, nil},
		{"-3/4", -0.75, nil},
		{"1/0", 0, ErrDivisionByZero},
		{"1/0.0", 0, ErrDivisionByZero},
		{"1/", 0, ErrUnrecognizedFormat},
		{"/2", 0, ErrUnrecognizedFormat},
		{"1/2/3", 0, ErrUnrecognizedFormat},
		{"a/b", 0, ErrUnrecognizedFormat},
		{"12", 0, ErrUnrecognizedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := parseSimpleFraction(tt.input)
			if !errors.Is(err, tt.err) {
				t.Fatalf("parseSimpleFraction(%q) error = %v, want %v", tt.input, err, tt.err)
			}
			if v != tt.value {
				t.Errorf("parseSimpleFraction(%q) = %v, want %v", tt.input, v, tt.value)
			}
		})
	}
}
