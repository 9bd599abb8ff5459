package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	if RequestIDCtxKey.String() != "requestID" {
		t.Fatalf("unexpected key string %q", RequestIDCtxKey.String())
	}
}

func TestGetRequestIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		want   string
		wantOK bool
	}{
		{name: "set", ctx: WithRequestID(context.Background(), "req-1"), want: "req-1", wantOK: true},
		{name: "missing", ctx: context.Background()},
		{name: "empty", ctx: WithRequestID(context.Background(), "")},
		{name: "wrong type", ctx: context.WithValue(context.Background(), RequestIDCtxKey, 42)},
		{name: "plain string key", ctx: context.WithValue(context.Background(), "requestID", "req-1")}, //nolint:staticcheck
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetRequestIDFromContext(tt.ctx)
			if ok != tt.wantOK || got != tt.want {
				t.Fatalf("got (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()
	a, b := g.Generate(), g.Generate()

	if len(a) != 36 {
		t.Fatalf("unexpected uuid %q", a)
	}
	if a == b {
		t.Fatal("expected unique ids")
	}
	if a[14] != '7' {
		t.Fatalf("expected version 7 uuid, got %q", a)
	}
}
