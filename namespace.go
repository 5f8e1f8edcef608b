package flagkit

import (
	"encoding/json"
	"fmt"
)

// Namespace specifies what slice of a shared hash space an experiment
// occupies. Experiments in the same namespace with non-overlapping
// ranges are mutually exclusive.
type Namespace struct {
	ID    string
	Start float64
	End   float64
}

// Namespace inclusion always hashes with version 1, seeded by "__"
// plus the namespace id.
func (ns *Namespace) inNamespace(hashValue string) bool {
	n := hash("__"+ns.ID, hashValue, 1)
	return *n >= ns.Start && *n < ns.End
}

// Namespaces are serialized as [id, start, end] tuples.
func (ns *Namespace) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	if len(tuple) != 3 {
		return fmt.Errorf("namespace expects 3 elements, got %d", len(tuple))
	}
	if err := json.Unmarshal(tuple[0], &ns.ID); err != nil {
		return err
	}
	if err := json.Unmarshal(tuple[1], &ns.Start); err != nil {
		return err
	}
	return json.Unmarshal(tuple[2], &ns.End)
}

func (ns Namespace) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]any{ns.ID, ns.Start, ns.End})
}
