package condition

import (
	"bytes"
	"encoding/json"

	"github.com/flagkit/flagkit-golang/internal/value"
)

// Base is a complete condition as it appears in feature rules and
// experiments. The zero value matches everything.
type Base struct {
	cond Condition
}

// New parses a condition from its generic JSON form.
func New(raw map[string]any) (Base, error) {
	cond, err := buildBaseCond(value.New(raw))
	if err != nil {
		return Base{}, err
	}
	return Base{cond}, nil
}

func (base Base) Eval(actual value.Value, groups SavedGroups) bool {
	if base.cond == nil {
		return true
	}
	return base.cond.Eval(actual, groups)
}

func (base *Base) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*base = Base{}
		return nil
	}
	var m map[string]any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&m); err != nil {
		return err
	}
	cond, err := buildBaseCond(value.New(m))
	if err != nil {
		return err
	}
	*base = Base{cond}
	return nil
}
