// Package productcode derives human-traceable product codes from product names.
//
// A code has the shape "<hash>-<startIndex><run><endIndex>", where hash is the
// first 8 hex characters of the MD5 digest of the lowercased name, and run is
// the concatenation of every longest strictly-increasing run of letters found
// in the normalized name. The two indices are located by searching for the
// run's first and last letters in the lowercased name. They are position
// markers, not exact provenance, and must stay search-based so that codes can
// be reproduced against existing catalog data.
package productcode

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// HashLength is the number of hex characters kept from the name digest.
const HashLength = 8

// Run describes the longest increasing runs of a name.
type Run struct {
	Substring  string
	StartIndex int
	EndIndex   int
}

type span struct {
	start, end int // inclusive
}

// Generate returns the product code for name. It never fails: names without
// letters produce "<hash>-00".
func Generate(name string) string {
	run := LongestIncreasingRun(name)
	return fmt.Sprintf("%s-%d%s%d", ContentHash(name), run.StartIndex, run.Substring, run.EndIndex)
}

// Normalize lowercases name and drops everything outside a-z.
func Normalize(name string) string {
	_, normalized := prepare(name)
	return normalized
}

// prepare returns the lowercased name and its letters-only form.
func prepare(name string) (lowered, normalized string) {
	lowered = lower(name)
	return lowered, lettersOnly(lowered)
}

// ContentHash returns the first HashLength hex characters of the MD5 digest
// of the lowercased name.
func ContentHash(name string) string {
	sum := md5.Sum([]byte(lower(name)))
	return hex.EncodeToString(sum[:])[:HashLength]
}

// LongestIncreasingRun finds every maximal strictly-increasing run of the
// normalized name that has the maximum length and concatenates them in order
// of appearance. StartIndex and EndIndex are UTF-16 offsets into the
// lowercased name: the first occurrence of the first run letter and the last
// occurrence of the last run letter.
func LongestIncreasingRun(name string) Run {
	lowered, normalized := prepare(name)
	if normalized == "" {
		return Run{}
	}

	spans := longestRuns(normalized)

	var sb strings.Builder
	for _, s := range spans {
		sb.WriteString(normalized[s.start : s.end+1])
	}

	units := utf16.Encode([]rune(lowered))
	first := uint16(normalized[spans[0].start])
	last := uint16(normalized[spans[len(spans)-1].end])

	return Run{
		Substring:  sb.String(),
		StartIndex: indexOf(units, first),
		EndIndex:   lastIndexOf(units, last),
	}
}

// longestRuns splits s into maximal strictly-increasing runs and keeps those
// of maximum length. s must not be empty.
func longestRuns(s string) []span {
	maxLen, curLen, curStart := 1, 1, 0
	var runs []span

	closeRun := func(end int) {
		switch {
		case curLen > maxLen:
			maxLen = curLen
			runs = []span{{start: curStart, end: end}}
		case curLen == maxLen:
			runs = append(runs, span{start: curStart, end: end})
		}
	}

	for i := 1; i < len(s); i++ {
		if s[i] > s[i-1] {
			curLen++
			continue
		}
		closeRun(i - 1)
		curStart, curLen = i, 1
	}
	closeRun(len(s) - 1)

	return runs
}

// lower applies full Unicode lowercasing. A Caser keeps state, so one is
// built per call.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

func lettersOnly(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'a' && c <= 'z' {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

func indexOf(units []uint16, u uint16) int {
	for i, v := range units {
		if v == u {
			return i
		}
	}
	return -1
}

func lastIndexOf(units []uint16, u uint16) int {
	for i := len(units) - 1; i >= 0; i-- {
		if units[i] == u {
			return i
		}
	}
	return -1
}
