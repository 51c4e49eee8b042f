package dineboard

import (
	"reflect"
	"testing"
)

func TestQuery(t *testing.T) {
	k := SampleKitchen("EUR")
	testCases := []struct {
		path string
		want any
	}{
		{path: "$.currency", want: "EUR"},
		{path: "$.dishes[0].name", want: "stir fry noodles"},
		{path: "$.ingredients[0].pricePerUnit", want: 3.0},
		{path: "$.stock[*].name", want: []any{"noodles", "chicken", "carrot", "broccoli", "bell pepper"}},
		{path: `$.dishes[0].recipe[?(@.ingredient=="carrot")].amount`, want: []any{"1 units"}},
	}
	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			got, err := Query(k, tc.path)
			if err != nil {
				t.Fatalf("Query: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Query(%q) = %#v, want %#v", tc.path, got, tc.want)
			}
		})
	}

	if _, err := Query(k, "$.["); err == nil {
		t.Errorf("Query with an invalid path should fail")
	}
}
