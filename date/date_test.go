package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNewNormalizes(t *testing.T) {
	got := New(2024, time.February, 30)
	if want := MustParse("2024-03-01"); got != want {
		t.Errorf("New(2024, 2, 30) = %v, want %v", got, want)
	}
	if got := MustParse("2023-12-31").Add(1); got != MustParse("2024-01-01") {
		t.Errorf("Add(1) = %v, want 2024-01-01", got)
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2024-01-01", want: "2024-01-01"},
		{in: "2024-12-31", want: "2024-12-31"},
		{in: "2024-1-1", wantErr: true},
		{in: "2024-01", wantErr: true},
		{in: "01/02/2024", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) = %v, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tc.in, err)
			}
			if got.String() != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	a := MustParse("2024-01-31")
	b := MustParse("2024-02-01")
	c := MustParse("2025-01-01")

	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Errorf("Compare across months is wrong")
	}
	if !b.Before(c) || !c.After(a) || a.After(a) || a.Before(a) {
		t.Errorf("Before/After are inconsistent with Compare")
	}
}

func TestJSON(t *testing.T) {
	d := MustParse("2024-05-06")
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"2024-05-06"` {
		t.Errorf("Marshal = %s, want %q", data, "2024-05-06")
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != d {
		t.Errorf("Unmarshal = %v, want %v", back, d)
	}
	if err := json.Unmarshal([]byte(`"yesterday"`), &back); err == nil {
		t.Errorf("Unmarshal of an invalid date should fail")
	}
}
