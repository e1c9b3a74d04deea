package entity

import "testing"

func TestHourListValidate(t *testing.T) {
	valid := HourList{"11:30-14:00", "19:00-22:30"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid slots, got %v", err)
	}

	if err := (HourList{}).Validate(); err != nil {
		t.Fatalf("expected empty list to be valid, got %v", err)
	}

	cases := []HourList{
		{"11h30-14h00"},
		{"11:30"},
		{"14:00-11:30"},
		{"11:30-11:30"},
		{"25:00-26:00"},
	}
	for _, c := range cases {
		if err := c.Validate(); err == nil {
			t.Fatalf("expected error for %v", c)
		}
	}
}
