package flagkit

import (
	"github.com/barkimedes/go-deepcopy"
)

// Attributes is an arbitrary JSON-like object containing user and
// request attributes.
type Attributes map[string]any

func (a Attributes) clone() Attributes {
	if a == nil {
		return nil
	}
	return deepcopy.MustAnything(a).(Attributes)
}
