package decode_test

import (
	"strings"
	"testing"

	"github.com/adbstack/agent-tools/pkg/decode"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestJSON(t *testing.T) {
	got, err := decode.JSON[payload](strings.NewReader(`{"name": "a", "count": 2}`))
	if err != nil {
		t.Fatalf("JSON() failed: %v", err)
	}
	if got.Name != "a" || got.Count != 2 {
		t.Errorf("JSON() = %+v", got)
	}
}

func TestJSON_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed", `{"name":`},
		{"unknown field", `{"name": "a", "extra": true}`},
		{"trailing content", `{"name": "a"} {"name": "b"}`},
		{"wrong type", `{"count": "two"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := decode.JSON[payload](strings.NewReader(tt.body)); err == nil {
				t.Error("JSON() succeeded, want error")
			}
		})
	}
}

func TestFromMap(t *testing.T) {
	got, err := decode.FromMap[payload](map[string]any{"name": "a", "count": float64(3)})
	if err != nil {
		t.Fatalf("FromMap() failed: %v", err)
	}
	if got.Name != "a" || got.Count != 3 {
		t.Errorf("FromMap() = %+v", got)
	}
}

func TestFromMap_IgnoresUnknownKeys(t *testing.T) {
	got, err := decode.FromMap[payload](map[string]any{"name": "a", "extra": true})
	if err != nil {
		t.Fatalf("FromMap() failed: %v", err)
	}
	if got.Name != "a" {
		t.Errorf("Name = %q, want %q", got.Name, "a")
	}
}
