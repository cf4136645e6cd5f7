package model

import (
	"encoding/json"
	"testing"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-02")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.String() != "2026-03-02" {
		t.Errorf("String = %q", d.String())
	}

	for _, bad := range []string{"", "03/02/2026", "2026-3-2", "2026-13-01"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q): want error", bad)
		}
	}
}

func TestDateArithmetic(t *testing.T) {
	d, _ := ParseDate("2026-02-27")

	if got := d.AddDays(3).String(); got != "2026-03-02" {
		t.Errorf("AddDays crossed month wrong: %s", got)
	}

	end, _ := ParseDate("2026-03-05")
	if got := d.DaysUntil(end); got != 6 {
		t.Errorf("DaysUntil = %d, want 6", got)
	}
	if got := end.DaysUntil(d); got != -6 {
		t.Errorf("reverse DaysUntil = %d, want -6", got)
	}
	if got := d.DaysUntil(d); got != 0 {
		t.Errorf("same day DaysUntil = %d, want 0", got)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d, _ := ParseDate("2026-03-02")

	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(raw) != `"2026-03-02"` {
		t.Errorf("wire form = %s", raw)
	}

	var back Date
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.String() != d.String() {
		t.Errorf("round trip: %s != %s", back, d)
	}

	if err := json.Unmarshal([]byte(`123`), &back); err == nil {
		t.Error("non-string date should fail")
	}
}
