package numbers

import (
	"errors"
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr bool
	}{
		{name: "single number", input: "1", want: []int{1}},
		{name: "comma separated", input: "1,3,5", want: []int{1, 3, 5}},
		{name: "space separated", input: "1 3 5", want: []int{1, 3, 5}},
		{name: "range", input: "2-4", want: []int{2, 3, 4}},
		{name: "mixed with duplicates", input: "3,1-3", want: []int{3, 1, 2}},
		{name: "empty", input: "", wantErr: true},
		{name: "zero", input: "0", wantErr: true},
		{name: "word", input: "one", wantErr: true},
		{name: "backwards range", input: "5-2", wantErr: true},
		{name: "huge range", input: "1-5000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidNumber) {
					t.Fatalf("Parse(%q) error = %v, want ErrInvalidNumber", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseArgs(t *testing.T) {
	got, err := ParseArgs([]string{"1", "4-5"})
	if err != nil {
		t.Fatalf("ParseArgs() error = %v", err)
	}
	if !reflect.DeepEqual(got, []int{1, 4, 5}) {
		t.Fatalf("ParseArgs() = %v", got)
	}
}
