package main

import (
	"reflect"
	"testing"
)

func TestRewriteDirectLookupArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"marlow"},
			want: []string{"marlow"},
		},
		{
			name: "direct client id first token",
			in:   []string{"marlow", "client-abc123"},
			want: []string{"marlow", "clients", "show", "client-abc123"},
		},
		{
			name: "direct event id first token",
			in:   []string{"marlow", "evt-abc123"},
			want: []string{"marlow", "events", "show", "evt-abc123"},
		},
		{
			name: "direct client id after value flag",
			in:   []string{"marlow", "--dir", "./tmp-test-store", "client-abc123"},
			want: []string{"marlow", "--dir", "./tmp-test-store", "clients", "show", "client-abc123"},
		},
		{
			name: "direct client id after equals flag",
			in:   []string{"marlow", "--dir=./tmp-test-store", "client-abc123"},
			want: []string{"marlow", "--dir=./tmp-test-store", "clients", "show", "client-abc123"},
		},
		{
			name: "direct client id after bool flag",
			in:   []string{"marlow", "--pretty", "client-abc123"},
			want: []string{"marlow", "--pretty", "clients", "show", "client-abc123"},
		},
		{
			name: "direct client id after double dash",
			in:   []string{"marlow", "--dir", "./tmp-test-store", "--", "client-abc123"},
			want: []string{"marlow", "--dir", "./tmp-test-store", "--", "clients", "show", "client-abc123"},
		},
		{
			name: "normal subcommand not rewritten",
			in:   []string{"marlow", "clients", "show", "client-abc123"},
			want: []string{"marlow", "clients", "show", "client-abc123"},
		},
		{
			name: "bare prefix not rewritten",
			in:   []string{"marlow", "client-"},
			want: []string{"marlow", "client-"},
		},
		{
			name: "unknown command not rewritten",
			in:   []string{"marlow", "wat"},
			want: []string{"marlow", "wat"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteDirectLookupArgs(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("rewriteDirectLookupArgs:\n got: %#v\nwant: %#v", got, tt.want)
			}
		})
	}
}
