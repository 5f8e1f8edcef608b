package condition

import "testing"

func TestSizeCond(t *testing.T) {
	runEvalCases(t, []evalCase{
		{"exact length", `{"tags": {"$size": 2}}`, `{"tags": ["a", "b"]}`, true},
		{"wrong length", `{"tags": {"$size": 2}}`, `{"tags": ["a", "b", "c"]}`, false},
		{"operator object", `{"tags": {"$size": {"$gt": 1}}}`, `{"tags": ["a", "b"]}`, true},
		{"operator object fail", `{"tags": {"$size": {"$gt": 5}}}`, `{"tags": ["a", "b"]}`, false},
		{"non-array attribute", `{"tags": {"$size": 0}}`, `{"tags": "ab"}`, false},
		{"missing attribute", `{"tags": {"$size": 0}}`, `{}`, false},
	})
}

func TestAllCond(t *testing.T) {
	runEvalCases(t, []evalCase{
		{"all present", `{"tags": {"$all": ["a", "b"]}}`, `{"tags": ["b", "c", "a"]}`, true},
		{"one missing", `{"tags": {"$all": ["a", "b"]}}`, `{"tags": ["a", "c"]}`, false},
		{"non-array attribute", `{"tags": {"$all": ["a"]}}`, `{"tags": "a"}`, false},
		{"missing attribute", `{"tags": {"$all": ["a"]}}`, `{}`, false},
	})
}

func TestElemMatchCond(t *testing.T) {
	runEvalCases(t, []evalCase{
		{"operator form pass", `{"nums": {"$elemMatch": {"$gt": 10}}}`, `{"nums": [5, 20]}`, true},
		{"operator form fail", `{"nums": {"$elemMatch": {"$gt": 10}}}`, `{"nums": [1, 2]}`, false},
		{"condition form pass", `{"members": {"$elemMatch": {"name": "alice"}}}`, `{"members": [{"name": "bob"}, {"name": "alice"}]}`, true},
		{"condition form fail", `{"members": {"$elemMatch": {"name": "carol"}}}`, `{"members": [{"name": "bob"}, {"name": "alice"}]}`, false},
		{"non-array attribute", `{"nums": {"$elemMatch": {"$gt": 10}}}`, `{"nums": 20}`, false},
		{"missing attribute", `{"nums": {"$elemMatch": {"$gt": 10}}}`, `{}`, false},
	})
}
