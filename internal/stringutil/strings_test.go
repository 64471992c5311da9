package stringutil

import (
	"reflect"
	"testing"
)

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"Valid digits", "123456", true},
		{"Course index", "3", true},
		{"Empty string", "", false},
		{"Contains letter", "123a456", false},
		{"Contains space", "123 456", false},
		{"Only letters", "abc", false},
		{"Special chars", "-1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsNumeric(tt.input)
			if got != tt.want {
				t.Errorf("IsNumeric(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeSpaces(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  Logic   System\tDesign ", "Logic System Design"},
		{"IDEA Lab", "IDEA Lab"},
		{"   ", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeSpaces(tt.input); got != tt.want {
			t.Errorf("NormalizeSpaces(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantVerb string
		wantArgs []string
	}{
		{"blank", "   ", "", nil},
		{"verb only", "CALC", "calc", []string{}},
		{"verb with args", "grade  IDEA Lab  S", "grade", []string{"IDEA", "Lab", "S"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verb, args := SplitCommand(tt.line)
			if verb != tt.wantVerb {
				t.Errorf("verb = %q, want %q", verb, tt.wantVerb)
			}
			if len(args) != len(tt.wantArgs) || (len(args) > 0 && !reflect.DeepEqual(args, tt.wantArgs)) {
				t.Errorf("args = %v, want %v", args, tt.wantArgs)
			}
		})
	}
}

func TestSplitLast(t *testing.T) {
	tests := []struct {
		fields   []string
		wantHead string
		wantLast string
	}{
		{nil, "", ""},
		{[]string{"S"}, "", "S"},
		{[]string{"IDEA", "Lab", "A+"}, "IDEA Lab", "A+"},
	}

	for _, tt := range tests {
		head, last := SplitLast(tt.fields)
		if head != tt.wantHead || last != tt.wantLast {
			t.Errorf("SplitLast(%v) = (%q, %q), want (%q, %q)", tt.fields, head, last, tt.wantHead, tt.wantLast)
		}
	}
}
