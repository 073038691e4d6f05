package appshell

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name string
		ctx  context.Context
		code int
		want int
	}{
		{"clean run", context.Background(), 0, 0},
		{"clean run after interrupt", cancelled, 0, 130},
		{"tool error survives interrupt", cancelled, 3, 3},
		{"usage error without interrupt", context.Background(), 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			got := normalize(tt.ctx, &stderr, tt.code)
			if got != tt.want {
				t.Errorf("normalize = %d, want %d", got, tt.want)
			}
			if tt.want == 130 && !strings.Contains(stderr.String(), "interrupted") {
				t.Errorf("expected interruption notice, got %q", stderr.String())
			}
			if tt.want != 130 && stderr.Len() != 0 {
				t.Errorf("unexpected stderr output: %q", stderr.String())
			}
		})
	}
}
