package condition

import (
	"bytes"
	"encoding/json"

	"github.com/flagkit/flagkit-golang/internal/value"
)

// SavedGroups are shared lists of attribute values referenced by
// $inGroup / $notInGroup.
type SavedGroups map[string]value.ArrValue

func (sg *SavedGroups) UnmarshalJSON(data []byte) error {
	var groups map[string][]any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&groups); err != nil {
		return err
	}
	*sg = SavedGroups{}
	for k, v := range groups {
		if arr, ok := value.New(v).(value.ArrValue); ok {
			(*sg)[k] = arr
		}
	}
	return nil
}
