package decode

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAdjustIgnore(t *testing.T) {
	inputs := []Body{
		String("text"),
		Bytes([]byte{0x01, 0x02}),
		Stream{Reader: strings.NewReader("stream")},
		Value{V: 10},
		Wrap(nil),
	}

	for _, raw := range inputs {
		value, ok, err := Adjust(Ignore(), raw)
		if err != nil {
			t.Fatalf("Adjust(Ignore, %T) returned error: %v", raw, err)
		}
		if !ok {
			t.Errorf("Adjust(Ignore, %T) should always succeed", raw)
		}
		if value != nil {
			t.Errorf("Adjust(Ignore, %T) should yield nil, got %v", raw, value)
		}
	}
}

func TestAdjustText(t *testing.T) {
	t.Run("string, bytes and stream decode identically", func(t *testing.T) {
		const want = "hello"

		var got []any
		for _, raw := range []Body{
			String(want),
			Bytes([]byte(want)),
			Stream{Reader: strings.NewReader(want)},
		} {
			value, ok, err := Adjust(Text("utf-8"), raw)
			if err != nil {
				t.Fatalf("Adjust(Text, %T) returned error: %v", raw, err)
			}
			if !ok {
				t.Fatalf("Adjust(Text, %T) should succeed", raw)
			}
			got = append(got, value)
		}

		if diff := cmp.Diff([]any{want, want, want}, got); diff != "" {
			t.Errorf("Decoded text mismatch:\n%s", diff)
		}
	})

	t.Run("opaque value is a mismatch", func(t *testing.T) {
		value, ok, err := Adjust(Text("utf-8"), Value{V: 10})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if ok {
			t.Errorf("Expected mismatch for numeric raw value, got %v", value)
		}
	})

	t.Run("latin-1 bytes decode through the charset", func(t *testing.T) {
		value, ok, err := Adjust(Text("ISO-8859-1"), Bytes([]byte{0xE9}))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !ok {
			t.Fatal("Expected latin-1 bytes to decode")
		}
		if value != "é" {
			t.Errorf("Expected é, got %q", value)
		}
	})

	t.Run("unknown charset is an error, not a mismatch", func(t *testing.T) {
		_, _, err := Adjust(Text("no-such-charset"), Bytes([]byte("x")))
		if !errors.Is(err, ErrUnknownCharset) {
			t.Errorf("Expected ErrUnknownCharset, got %v", err)
		}
	})

	t.Run("empty charset means utf-8", func(t *testing.T) {
		value, ok, err := Adjust(Text(""), Bytes([]byte("plain")))
		if err != nil || !ok {
			t.Fatalf("Expected success, got ok=%v err=%v", ok, err)
		}
		if value != "plain" {
			t.Errorf("Expected plain, got %q", value)
		}
	})
}

func TestAdjustMapped(t *testing.T) {
	parseInt := func(v any) (any, error) {
		return strconv.Atoi(v.(string))
	}

	t.Run("transforms the inner result", func(t *testing.T) {
		value, ok, err := Adjust(Mapped(Text("utf-8"), parseInt), String("10"))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !ok {
			t.Fatal("Expected adjustment to succeed")
		}
		if value != 10 {
			t.Errorf("Expected 10, got %v", value)
		}
	})

	t.Run("inner mismatch fails the mapped adjustment", func(t *testing.T) {
		called := false
		spy := func(v any) (any, error) {
			called = true
			return v, nil
		}

		_, ok, err := Adjust(Mapped(Text("utf-8"), spy), Value{V: 10})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if ok {
			t.Error("Expected mismatch to propagate")
		}
		if called {
			t.Error("Transform must not run when the inner adjustment fails")
		}
	})

	t.Run("transform error propagates untouched", func(t *testing.T) {
		boom := errors.New("not a number")
		failing := func(any) (any, error) { return nil, boom }

		_, _, err := Adjust(Mapped(Text("utf-8"), failing), String("abc"))
		if err != boom {
			t.Errorf("Expected identical transform error, got %v", err)
		}
	})

	t.Run("nested mapping", func(t *testing.T) {
		double := func(v any) (any, error) { return v.(int) * 2, nil }

		value, ok, err := Adjust(Mapped(Mapped(Text("utf-8"), parseInt), double), String("21"))
		if err != nil || !ok {
			t.Fatalf("Expected success, got ok=%v err=%v", ok, err)
		}
		if value != 42 {
			t.Errorf("Expected 42, got %v", value)
		}
	})
}

func TestWrap(t *testing.T) {
	tt := []struct {
		name string
		in   any
		want Body
	}{
		{"string", "x", String("x")},
		{"bytes", []byte("x"), Bytes([]byte("x"))},
		{"nil", nil, Bytes(nil)},
		{"opaque", 10, Value{V: 10}},
		{"existing body", String("x"), String("x")},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got := Wrap(tc.in)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Wrap mismatch:\n%s", diff)
			}
		})
	}

	t.Run("reader", func(t *testing.T) {
		r := strings.NewReader("x")
		stream, ok := Wrap(r).(Stream)
		if !ok {
			t.Fatal("Expected a Stream variant")
		}
		if stream.Reader != r {
			t.Error("Expected the reader to pass through")
		}
	})
}
