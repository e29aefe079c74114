package api

import (
	"reflect"
	"testing"
)

func TestParseTables(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty defaults to wildcard", raw: "", want: []string{"*"}},
		{name: "single table", raw: "orders", want: []string{"orders"}},
		{name: "multiple tables", raw: "orders,inventory", want: []string{"orders", "inventory"}},
		{name: "spaces trimmed", raw: " orders , sales ", want: []string{"orders", "sales"}},
		{name: "stray commas dropped", raw: ",orders,,", want: []string{"orders"}},
		{name: "only commas defaults to wildcard", raw: ",,", want: []string{"*"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseTables(tt.raw); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("parseTables(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
