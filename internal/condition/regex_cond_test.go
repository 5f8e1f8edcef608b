package condition

import "testing"

func TestRegexCond(t *testing.T) {
	runEvalCases(t, []evalCase{
		{"match", `{"email": {"$regex": "@example\\.com$"}}`, `{"email": "a@example.com"}`, true},
		{"no match", `{"email": {"$regex": "@example\\.com$"}}`, `{"email": "a@other.com"}`, false},
		{"missing attribute", `{"email": {"$regex": "@"}}`, `{}`, false},
		{"invalid regex", `{"email": {"$regex": "(((("}}`, `{"email": "a@example.com"}`, false},
		{"number attribute stringified", `{"code": {"$regex": "^12"}}`, `{"code": 123}`, true},
		{"array any element", `{"tags": {"$regex": "^a"}}`, `{"tags": ["b", "ax"]}`, true},
		{"array no element", `{"tags": {"$regex": "^a"}}`, `{"tags": ["b", "c"]}`, false},
		{"non-string argument", `{"email": {"$regex": 5}}`, `{}`, true},
	})
}
