package internal

import (
	"sort"
	"strconv"
)

// Diagnostic codes. Every phase reports with one of these; they are the exact
// text written after the line number.
const (
	IllegalSymbolCode      = "a" // lone & or |
	RedefinedNameCode      = "b"
	UndefinedNameCode      = "c"
	ArgCountMismatchCode   = "d"
	ArgTypeMismatchCode    = "e"
	VoidReturnValueCode    = "f"
	MissingReturnCode      = "g"
	AssignToConstCode      = "h"
	MissingSemiColonCode   = "i"
	MissingRightParentCode = "j"
	MissingRightSquareCode = "k"
	PrintfArgCountCode     = "l"
	BreakOutsideLoopCode   = "m"
	NumberOverflowCode     = "number_overflow"
)

type Diagnostic struct {
	Line int
	Code string
}

func (d Diagnostic) String() string {
	return strconv.Itoa(d.Line) + " " + d.Code
}

// Aggregate concatenates the diagnostics of all phases, orders them by line
// keeping arrival order for equal lines, and collapses an entry that is equal
// to the one right after it.
func Aggregate(phases ...[]Diagnostic) []Diagnostic {
	var all []Diagnostic
	for _, diags := range phases {
		all = append(all, diags...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Line < all[j].Line
	})
	ret := make([]Diagnostic, 0, len(all))
	for i, d := range all {
		if i < len(all)-1 && d == all[i+1] {
			continue
		}
		ret = append(ret, d)
	}
	return ret
}
