package flagkit

import (
	"net/url"
	"strconv"
)

// Checks if an experiment variation is being forced via a URL query
// string.
//
// As an example, if the id is "my-test" and url is
// http://localhost/?my-test=1, this function returns 1.
func getQueryStringOverride(id string, u *url.URL, numVariations int) (int, bool) {
	if u == nil {
		return 0, false
	}
	v, ok := u.Query()[id]
	if !ok || len(v) > 1 {
		return 0, false
	}
	vi, err := strconv.Atoi(v[0])
	if err != nil {
		return 0, false
	}
	if vi < 0 || vi >= numVariations {
		return 0, false
	}
	return vi, true
}
