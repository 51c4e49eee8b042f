package dineboard

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates a JSONPath expression against the JSON form of the kitchen,
// e.g. `$.stock[?(@.name=="noodles")].amount` or `$.dishes[*].name`.
func Query(k *Kitchen, path string) (any, error) {
	data, err := json.Marshal(k)
	if err != nil {
		return nil, fmt.Errorf("could not encode kitchen: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("could not decode kitchen: %w", err)
	}
	val, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	return val, nil
}
