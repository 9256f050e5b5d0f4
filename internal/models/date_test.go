package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateJSON(t *testing.T) {
	t.Run("marshals as YYYY-MM-DD", func(t *testing.T) {
		b, err := json.Marshal(NewDate(2025, time.March, 9))
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		if string(b) != `"2025-03-09"` {
			t.Errorf("got %s, want %q", b, `"2025-03-09"`)
		}
	})

	t.Run("zero date marshals as null", func(t *testing.T) {
		b, err := json.Marshal(Date{})
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		if string(b) != "null" {
			t.Errorf("got %s, want null", b)
		}
	})

	t.Run("unmarshals from string, empty string, and null", func(t *testing.T) {
		var d Date
		if err := json.Unmarshal([]byte(`"2025-12-31"`), &d); err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}
		if d.String() != "2025-12-31" {
			t.Errorf("got %q, want 2025-12-31", d.String())
		}

		if err := json.Unmarshal([]byte(`null`), &d); err != nil {
			t.Fatalf("Unmarshal null failed: %v", err)
		}
		if !d.IsZero() {
			t.Error("expected zero date after null")
		}

		if err := json.Unmarshal([]byte(`""`), &d); err != nil {
			t.Fatalf("Unmarshal empty failed: %v", err)
		}
		if !d.IsZero() {
			t.Error("expected zero date after empty string")
		}
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		var d Date
		if err := json.Unmarshal([]byte(`"31/12/2025"`), &d); err == nil {
			t.Error("expected error for malformed date")
		}
	})
}

func TestDateArithmetic(t *testing.T) {
	d := NewDate(2025, time.January, 1)
	if got := d.AddDays(-1).String(); got != "2024-12-31" {
		t.Errorf("AddDays(-1): got %q, want 2024-12-31", got)
	}
	if !d.Equal(DateOf(time.Date(2025, time.January, 1, 23, 59, 0, 0, time.UTC))) {
		t.Error("DateOf should truncate time-of-day")
	}
}
