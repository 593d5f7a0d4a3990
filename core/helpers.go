package core

import "fmt"

// errorf prefixes a formatted message with the method name, keeping any %w
// sentinel reachable through errors.Is.
func errorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("core: %s: "+format, append([]interface{}{method}, args...)...)
}

// contains reports whether id occurs in ids.
func contains(ids []string, id string) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}

	return false
}

// without returns ids with every occurrence of id removed, reusing the
// backing array. Callers must own ids.
func without(ids []string, id string) []string {
	out := ids[:0]
	for _, x := range ids {
		if x != id {
			out = append(out, x)
		}
	}

	return out
}
