package sttp

import (
	"net/http"
	"testing"
)

func TestNewRequest(t *testing.T) {
	t.Run("parses method and URL", func(t *testing.T) {
		req, err := NewRequest(http.MethodGet, "http://example.com/a/b/c?p=v")
		if err != nil {
			t.Fatalf("Failed to create request: %v", err)
		}

		if req.Method != http.MethodGet {
			t.Errorf("Expected method GET, got %s", req.Method)
		}

		if req.URL.Path != "/a/b/c" {
			t.Errorf("Expected path /a/b/c, got %s", req.URL.Path)
		}
	})

	t.Run("invalid URL returns error", func(t *testing.T) {
		if _, err := NewRequest(http.MethodGet, "http://exa mple.com"); err == nil {
			t.Fatal("Expected error for invalid URL")
		}
	})
}

func TestRequestPathSegments(t *testing.T) {
	tt := []struct {
		name string
		url  string
		want []string
	}{
		{"nested path", "http://example.com/a/b/c", []string{"a", "b", "c"}},
		{"single segment", "http://example.com/d", []string{"d"}},
		{"root path", "http://example.com/", nil},
		{"no path", "http://example.com", nil},
		{"trailing slash", "http://example.com/a/b/", []string{"a", "b"}},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			req, err := NewRequest(http.MethodGet, tc.url)
			if err != nil {
				t.Fatalf("Failed to create request: %v", err)
			}

			got := req.PathSegments()
			if len(got) != len(tc.want) {
				t.Fatalf("Expected %d segments, got %d (%v)", len(tc.want), len(got), got)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Errorf("Segment %d: expected %q, got %q", i, tc.want[i], got[i])
				}
			}
		})
	}

	t.Run("nil URL", func(t *testing.T) {
		req := &Request{Method: http.MethodGet}
		if got := req.PathSegments(); got != nil {
			t.Errorf("Expected nil segments, got %v", got)
		}
	})
}

func TestRequestQueryParams(t *testing.T) {
	t.Run("first value wins", func(t *testing.T) {
		req, err := NewRequest(http.MethodGet, "http://example.com/d?p=v&p=w&q=x")
		if err != nil {
			t.Fatalf("Failed to create request: %v", err)
		}

		params := req.QueryParams()
		if params["p"] != "v" {
			t.Errorf("Expected p=v, got p=%s", params["p"])
		}
		if params["q"] != "x" {
			t.Errorf("Expected q=x, got q=%s", params["q"])
		}
	})

	t.Run("no query", func(t *testing.T) {
		req, err := NewRequest(http.MethodGet, "http://example.com/d")
		if err != nil {
			t.Fatalf("Failed to create request: %v", err)
		}

		if params := req.QueryParams(); len(params) != 0 {
			t.Errorf("Expected no params, got %v", params)
		}
	})
}
