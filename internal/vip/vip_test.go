package vip

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want Flair
		ok   bool
	}{
		{"Saeed", King, true},
		{"  ALSAEED ", King, true},
		{"سعيد", King, true},
		{"Lola", Queen, true},
		{"Bob", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := Lookup(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Lookup(%q) = %q, %v; want %q, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}
