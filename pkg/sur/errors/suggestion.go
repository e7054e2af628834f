package errors

import (
	"fmt"
	"strings"
)

// SuggestName suggests a close match when an unknown name is used where
// one of a fixed set is expected (pitch symbols, module markers,
// metadata keys). It uses Levenshtein distance to find similar names.
func SuggestName(unknown string, valid []string) string {
	if len(valid) == 0 {
		return ""
	}

	minDistance := 1000
	var bestMatch string

	for _, name := range valid {
		dist := levenshteinDistance(unknown, name)
		if dist < minDistance {
			minDistance = dist
			bestMatch = name
		}
	}

	// Only suggest if the distance is reasonable (< 5 edits)
	if minDistance < 5 {
		return fmt.Sprintf("Did you mean '%s'?", bestMatch)
	}

	if len(valid) > 5 {
		return fmt.Sprintf("Valid names include: %s, ...", strings.Join(valid[:5], ", "))
	}
	return fmt.Sprintf("Valid names: %s", strings.Join(valid, ", "))
}

// SuggestPitch suggests a valid pitch symbol for an unknown one.
func SuggestPitch(unknown string) string {
	return SuggestName(unknown, []string{"S", "R", "G", "M", "P", "D", "N", "-", "*"})
}

// SuggestMarker suggests a valid module marker for an unknown one.
func SuggestMarker(unknown string) string {
	return SuggestName(unknown, []string{"CONFIG", "SCALE", "COMPOSITION"})
}

// SuggestMissingField suggests adding a required entry.
func SuggestMissingField(fieldName string, exampleValue string) string {
	if exampleValue != "" {
		return fmt.Sprintf("Add '%s: %s' to the CONFIG block", fieldName, exampleValue)
	}
	return fmt.Sprintf("Add a '%s' entry to the CONFIG block", fieldName)
}

// levenshteinDistance computes the Levenshtein distance between two
// strings. Used for finding similar names for suggestions.
func levenshteinDistance(s1, s2 string) int {
	if s1 == s2 {
		return 0
	}

	len1 := len(s1)
	len2 := len(s2)

	matrix := make([][]int, len1+1)
	for i := range matrix {
		matrix[i] = make([]int, len2+1)
	}

	for i := 0; i <= len1; i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len2; j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len1; i++ {
		for j := 1; j <= len2; j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1,      // Deletion
				matrix[i][j-1]+1,      // Insertion
				matrix[i-1][j-1]+cost, // Substitution
			)
		}
	}

	return matrix[len1][len2]
}
