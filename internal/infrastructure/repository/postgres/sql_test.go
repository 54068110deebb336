package postgres

import (
	"database/sql"
	"testing"
)

func TestNullInt64ToIntPtr(t *testing.T) {
	t.Run("valid value", func(t *testing.T) {
		got := nullInt64ToIntPtr(sql.NullInt64{Int64: 27, Valid: true})
		if got == nil || *got != 27 {
			t.Fatalf("expected 27, got %v", got)
		}
	})

	t.Run("null value", func(t *testing.T) {
		if got := nullInt64ToIntPtr(sql.NullInt64{}); got != nil {
			t.Fatalf("expected nil, got %v", got)
		}
	})
}

func TestBoolPtrRoundTrip(t *testing.T) {
	correct := true
	null := boolPtrToNull(&correct)
	if !null.Valid || !null.Bool {
		t.Fatalf("unexpected null bool: %+v", null)
	}
	back := nullBoolToPtr(null)
	if back == nil || !*back {
		t.Fatalf("unexpected round trip: %v", back)
	}

	if got := boolPtrToNull(nil); got.Valid {
		t.Fatalf("expected invalid null bool for nil pointer")
	}
	if got := nullBoolToPtr(sql.NullBool{}); got != nil {
		t.Fatalf("expected nil pointer for invalid null bool")
	}
}

func TestInt64PtrToNull(t *testing.T) {
	amount := int64(1000)
	if got := int64PtrToNull(&amount); !got.Valid || got.Int64 != 1000 {
		t.Fatalf("unexpected null int64: %+v", got)
	}
	if got := int64PtrToNull(nil); got.Valid {
		t.Fatalf("expected invalid null int64 for nil pointer")
	}
}
