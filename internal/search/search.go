// Package search filters the lines of a text blob by substring match.
package search

import "strings"

// Search returns the lines of contents that contain query, in their original
// order. With ignoreCase both sides are lowercased before comparing, but the
// returned lines keep their original casing.
//
// The returned strings share memory with contents.
func Search(query, contents string, ignoreCase bool) []string {
	if ignoreCase {
		return CaseInsensitive(query, contents)
	}
	return CaseSensitive(query, contents)
}

// CaseSensitive returns the lines that contain query byte for byte
func CaseSensitive(query, contents string) []string {
	var matches []string
	for _, line := range Lines(contents) {
		if strings.Contains(line, query) {
			matches = append(matches, line)
		}
	}
	return matches
}

// CaseInsensitive returns the lines that contain query once both are lowercased
func CaseInsensitive(query, contents string) []string {
	query = strings.ToLower(query)

	var matches []string
	for _, line := range Lines(contents) {
		if strings.Contains(strings.ToLower(line), query) {
			matches = append(matches, line)
		}
	}
	return matches
}

// Lines splits contents on '\n'. A '\r' right before the '\n' is not part of
// the line and a final newline does not add an empty last line.
func Lines(contents string) []string {
	if contents == "" {
		return nil
	}

	lines := make([]string, 0, strings.Count(contents, "\n")+1)
	for len(contents) > 0 {
		i := strings.IndexByte(contents, '\n')
		if i < 0 {
			lines = append(lines, contents)
			break
		}
		lines = append(lines, strings.TrimSuffix(contents[:i], "\r"))
		contents = contents[i+1:]
	}
	return lines
}
