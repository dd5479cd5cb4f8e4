/*
Copyright © 2025 Savor Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package matcher resolves free-text model output against a controlled
// vocabulary of category or tag names.
package matcher

import "strings"

// Match resolves suggestion to one of the candidate names.
//
// Resolution is case-insensitive: an exact match wins; otherwise a
// candidate that contains the suggestion, or is contained in it, matches.
// When several candidates match, the first by input order wins — candidate
// order is significant and deliberately not alphabetical. An empty
// suggestion or no match returns ok=false; the matcher never guesses.
func Match(suggestion string, candidates []string) (name string, ok bool) {
	s := strings.ToLower(strings.TrimSpace(suggestion))
	if s == "" {
		return "", false
	}

	for _, c := range candidates {
		if strings.ToLower(c) == s {
			return c, true
		}
	}

	for _, c := range candidates {
		cl := strings.ToLower(c)
		if strings.Contains(cl, s) || strings.Contains(s, cl) {
			return c, true
		}
	}

	return "", false
}
