package classify

import "regexp"

// ClassPattern matches a classification token in an onboarding message:
// a two-digit year followed by 5-8 letters (e.g. "14HBSPA"), or one of the
// literal MACS, ALUMNI or International tokens. Matching is case-insensitive
// across the whole alternation.
var ClassPattern = regexp.MustCompile(`(?i)\d\d[a-zA-Z]{5,8}|MACS|ALUMNI|International`)

// PartitionResult holds the three parts of a string split around a pattern
// match. When Token is empty, Before carries the entire input and After is
// empty.
type PartitionResult struct {
	Before string
	Token  string
	After  string
}

// Partition splits content around the first match of pattern.
// The split happens exactly once, at the match position; later occurrences of
// the same text are left in After untouched.
func Partition(content string, pattern *regexp.Regexp) PartitionResult {
	loc := pattern.FindStringIndex(content)
	if loc == nil {
		return PartitionResult{Before: content}
	}
	return PartitionResult{
		Before: content[:loc[0]],
		Token:  content[loc[0]:loc[1]],
		After:  content[loc[1]:],
	}
}
