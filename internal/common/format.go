// Package common provides shared utilities for string representations and type conversions
package common

import (
	"fmt"
	"strings"
)

// ellipsis marks elided items in truncated lists.
const ellipsis = "..."

// FormatFunction formats a function-like string representation
// Pattern: functionName(arg1, arg2, ...)
func FormatFunction(name string, args ...string) string {
	if len(args) == 0 {
		return fmt.Sprintf("%s()", name)
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(args, ", "))
}

// FormatList formats items as a bracketed, comma separated list.
// Pattern: [item1, item2, ...]
func FormatList(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}

// FormatTruncatedList formats items like FormatList but keeps only the first and
// last limit/2 items when there are more than limit. A limit <= 0 disables truncation.
func FormatTruncatedList(items []string, limit int) string {
	if limit <= 0 || len(items) <= limit {
		return FormatList(items)
	}

	head := (limit + 1) / 2
	tail := limit - head
	kept := make([]string, 0, limit+1)
	kept = append(kept, items[:head]...)
	kept = append(kept, ellipsis)
	kept = append(kept, items[len(items)-tail:]...)
	return FormatList(kept)
}
