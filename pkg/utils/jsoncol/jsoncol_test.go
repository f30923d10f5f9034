package jsoncol_test

import (
	"testing"

	"github.com/lumendata/govcat/pkg/utils/cmp"
	"github.com/lumendata/govcat/pkg/utils/jsoncol"
	"github.com/lumendata/govcat/pkg/utils/try"
)

func TestSliceColumn(t *testing.T) {
	t.Run("a nil slice is stored as NULL", func(t *testing.T) {
		col := try.To(jsoncol.EncodeSlice[string](nil)).OrFatal(t)
		if col != nil {
			t.Errorf("expected NULL, got %q", *col)
		}
	})

	t.Run("a NULL column decodes to a nil slice, not an empty one", func(t *testing.T) {
		decoded := try.To(jsoncol.DecodeSlice[string](nil)).OrFatal(t)
		if decoded != nil {
			t.Errorf("expected nil, got %v", decoded)
		}
	})

	t.Run("an empty non-nil slice survives the round trip as empty, not NULL", func(t *testing.T) {
		col := try.To(jsoncol.EncodeSlice([]string{})).OrFatal(t)
		if col == nil {
			t.Fatal("expected a column value, got NULL")
		}
		if *col != "[]" {
			t.Errorf("unexpected column value: %q", *col)
		}

		decoded := try.To(jsoncol.DecodeSlice[string](col)).OrFatal(t)
		if decoded == nil || len(decoded) != 0 {
			t.Errorf("expected an empty slice, got %v", decoded)
		}
	})

	t.Run("values survive the round trip", func(t *testing.T) {
		values := []string{"pii", "orders", "finance"}
		col := try.To(jsoncol.EncodeSlice(values)).OrFatal(t)
		decoded := try.To(jsoncol.DecodeSlice[string](col)).OrFatal(t)
		if !cmp.SliceEq(decoded, values) {
			t.Errorf("unexpected result: got %v, want %v", decoded, values)
		}
	})

	t.Run("garbage in the column is an error", func(t *testing.T) {
		col := "not json"
		if _, err := jsoncol.DecodeSlice[string](&col); err == nil {
			t.Error("expected an error")
		}
	})
}

func TestMapColumn(t *testing.T) {
	t.Run("a nil map is stored as NULL", func(t *testing.T) {
		col := try.To(jsoncol.EncodeMap[any](nil)).OrFatal(t)
		if col != nil {
			t.Errorf("expected NULL, got %q", *col)
		}
	})

	t.Run("a NULL column decodes to a nil map, not an empty one", func(t *testing.T) {
		decoded := try.To(jsoncol.DecodeMap[any](nil)).OrFatal(t)
		if decoded != nil {
			t.Errorf("expected nil, got %v", decoded)
		}
	})

	t.Run("an empty non-nil map survives the round trip as empty, not NULL", func(t *testing.T) {
		col := try.To(jsoncol.EncodeMap(map[string]any{})).OrFatal(t)
		if col == nil {
			t.Fatal("expected a column value, got NULL")
		}
		if *col != "{}" {
			t.Errorf("unexpected column value: %q", *col)
		}

		decoded := try.To(jsoncol.DecodeMap[any](col)).OrFatal(t)
		if decoded == nil || len(decoded) != 0 {
			t.Errorf("expected an empty map, got %v", decoded)
		}
	})

	t.Run("values survive the round trip", func(t *testing.T) {
		values := map[string]any{"minLength": float64(3), "pattern": "^[a-z]+$"}
		col := try.To(jsoncol.EncodeMap(values)).OrFatal(t)
		decoded := try.To(jsoncol.DecodeMap[any](col)).OrFatal(t)
		if len(decoded) != len(values) {
			t.Fatalf("unexpected result: got %v, want %v", decoded, values)
		}
		for k, v := range values {
			if decoded[k] != v {
				t.Errorf("unexpected value at %q: got %v, want %v", k, decoded[k], v)
			}
		}
	})
}
