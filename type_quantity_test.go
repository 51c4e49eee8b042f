package dineboard

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseQuantity(t *testing.T) {
	testCases := []struct {
		in        string
		wantValue string
		wantUnit  string
		wantErr   bool
	}{
		{in: "200 g", wantValue: "200", wantUnit: "g"},
		{in: "20 kg", wantValue: "20", wantUnit: "kg"},
		{in: "1 unit", wantValue: "1", wantUnit: "unit"},
		{in: "50 Units", wantValue: "50", wantUnit: "units"},
		{in: "0.25kg", wantValue: "0.25", wantUnit: "kg"},
		{in: "  3  ", wantValue: "3", wantUnit: ""},
		{in: "2 table  spoons", wantValue: "2", wantUnit: "table spoons"},
		{in: "kg", wantErr: true},
		{in: "", wantErr: true},
		{in: "-1 kg", wantErr: true},
		{in: "1.2.3 kg", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseQuantity(tc.in)
			if tc.wantErr {
				if !errors.Is(err, ErrMalformedQuantity) {
					t.Fatalf("ParseQuantity(%q) error = %v, want ErrMalformedQuantity", tc.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseQuantity(%q) unexpected error: %v", tc.in, err)
			}
			if !got.Value().Equal(dec(tc.wantValue)) || got.Unit() != tc.wantUnit {
				t.Errorf("ParseQuantity(%q) = %v %q, want %v %q", tc.in, got.Value(), got.Unit(), tc.wantValue, tc.wantUnit)
			}
		})
	}
}

func TestQuantity_Compare(t *testing.T) {
	a := MustParseQuantity("200 g")
	b := MustParseQuantity("300 g")

	if c, err := a.Compare(b); err != nil || c != -1 {
		t.Errorf("Compare(200 g, 300 g) = %d, %v; want -1, nil", c, err)
	}
	if eq, err := a.Equal(Q(200, "g")); err != nil || !eq {
		t.Errorf("Equal(200 g, 200 g) = %v, %v; want true, nil", eq, err)
	}
	if _, err := a.Compare(MustParseQuantity("1 kg")); !errors.Is(err, ErrIncompatibleUnits) {
		t.Errorf("Compare(g, kg) error = %v, want ErrIncompatibleUnits", err)
	}
	if _, err := a.Sub(MustParseQuantity("1 kg")); !errors.Is(err, ErrIncompatibleUnits) {
		t.Errorf("Sub(g, kg) error = %v, want ErrIncompatibleUnits", err)
	}
}

func TestQuantity_Arithmetic(t *testing.T) {
	a := MustParseQuantity("0.2 kg")

	sum, err := a.Add(MustParseQuantity("0.3 kg"))
	if err != nil || sum.String() != "0.5 kg" {
		t.Errorf("Add = %v, %v; want 0.5 kg", sum, err)
	}
	diff, err := a.Sub(MustParseQuantity("0.5 kg"))
	if err != nil || !diff.Value().Equal(dec("-0.3")) {
		t.Errorf("Sub = %v, %v; want -0.3 kg", diff, err)
	}
	if got := a.Mul(dec("3")); got.String() != "0.6 kg" {
		t.Errorf("Mul = %v, want 0.6 kg", got)
	}
}

func TestQuantity_JSON(t *testing.T) {
	var line RecipeLine
	if err := json.Unmarshal([]byte(`{"ingredient":"carrot","amount":"1 unit"}`), &line); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if line.Amount.String() != "1 unit" {
		t.Errorf("Amount = %v, want 1 unit", line.Amount)
	}
	data, err := json.Marshal(line)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if want := `{"ingredient":"carrot","amount":"1 unit"}`; string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
	if err := json.Unmarshal([]byte(`{"amount":"some"}`), &line); !errors.Is(err, ErrMalformedQuantity) {
		t.Errorf("Unmarshal of a malformed amount error = %v, want ErrMalformedQuantity", err)
	}
}
