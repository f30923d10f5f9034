package postgres_test

import (
	"testing"

	kpgintr "github.com/lumendata/govcat/pkg/domain/internal/db/postgres"
	"github.com/lumendata/govcat/pkg/utils/jsoncol"
	"github.com/lumendata/govcat/pkg/utils/try"
)

func TestEmptyAsNil(t *testing.T) {
	t.Run("an empty slice becomes nil", func(t *testing.T) {
		if kpgintr.EmptyAsNil([]string{}) != nil {
			t.Error("expected nil")
		}
	})

	t.Run("a nil slice stays nil", func(t *testing.T) {
		if kpgintr.EmptyAsNil[string](nil) != nil {
			t.Error("expected nil")
		}
	})

	t.Run("values pass through", func(t *testing.T) {
		v := kpgintr.EmptyAsNil([]string{"a"})
		if len(v) != 1 || v[0] != "a" {
			t.Errorf("unexpected result: %v", v)
		}
	})

	t.Run("an empty map becomes nil", func(t *testing.T) {
		if kpgintr.EmptyMapAsNil(map[string]any{}) != nil {
			t.Error("expected nil")
		}
	})

	t.Run("an explicit empty collection is stored as NULL", func(t *testing.T) {
		col := try.To(jsoncol.EncodeSlice(kpgintr.EmptyAsNil([]string{}))).OrFatal(t)
		if col != nil {
			t.Errorf("expected NULL, got %q", *col)
		}
	})
}
