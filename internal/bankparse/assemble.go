package bankparse

import (
	"regexp"
	"strings"

	"github.com/mkpurohitt/bank-statement-audit/internal/extractor"
)

// lineAssembler groups raw statement lines into one logical line per
// transaction. A new line begins when the bank's start pattern matches;
// anything else is either boilerplate to discard or wrapped narration to
// join onto the previous line.
type lineAssembler struct {
	// start anchors the beginning of a transaction, usually a date.
	start *regexp.Regexp
	// drop lists substrings whose lines are discarded outright.
	drop []string
	// noJoin lists substrings whose lines are never joined as narration
	// continuation (page breaks, repeated column headers). The page break
	// sentinel is always included.
	noJoin []string
	// stop lists end-of-statement markers; assembly halts when one appears.
	stop []string
}

// assemble partitions text into candidate transaction lines. Lines appearing
// before the first start match are kept as-is; the field extractors filter
// them out by re-checking the start pattern.
func (a lineAssembler) assemble(text string) []string {
	noJoin := append([]string{extractor.PageBreak}, a.noJoin...)
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if containsAny(line, a.stop) {
			break
		}
		if containsAny(line, a.drop) {
			continue
		}
		if !a.start.MatchString(line) && len(out) > 0 {
			if !containsAny(line, noJoin) {
				out[len(out)-1] += " " + line
			}
		} else {
			out = append(out, line)
		}
	}
	return out
}

// blockAssembler groups raw lines into multi-line blocks, one per
// transaction, for formats whose rows span several physical lines.
type blockAssembler struct {
	start *regexp.Regexp
	// skip lists substrings whose lines are discarded.
	skip []string
	// header gates assembly: no block starts until a line containing it has
	// been seen. Empty means no gate.
	header string
}

// assemble returns the line groups. Lines before the header (when set) and
// lines before the first start match are discarded.
func (b blockAssembler) assemble(text string) [][]string {
	skip := append([]string{extractor.PageBreak}, b.skip...)
	started := b.header == ""
	var blocks [][]string
	var current []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !started {
			if strings.Contains(line, b.header) && line != "" {
				started = true
			}
			continue
		}
		if line == "" || containsAny(line, skip) {
			continue
		}
		if b.start.MatchString(line) {
			if len(current) > 0 {
				blocks = append(blocks, current)
			}
			current = []string{line}
		} else if len(current) > 0 {
			current = append(current, line)
		}
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

var spaceRun = regexp.MustCompile(`\s+`)

// collapseSpaces folds whitespace runs into single spaces.
func collapseSpaces(s string) string {
	return strings.TrimSpace(spaceRun.ReplaceAllString(s, " "))
}

// joinBlock flattens a block's lines into one space-collapsed string.
func joinBlock(lines []string) string {
	return collapseSpaces(strings.Join(lines, " "))
}

// isNumericToken reports whether a token is all digits after removing at most
// one decimal point or one comma. Used by narration-boundary scans that walk
// backwards from the money columns.
func isNumericToken(s string) bool {
	if s == "" {
		return false
	}
	return allDigits(strings.Replace(s, ".", "", 1)) || allDigits(strings.Replace(s, ",", "", 1))
}

// lastIndexOf returns the index of the last token equal to want, or -1.
func lastIndexOf(parts []string, want string) int {
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] == want {
			return i
		}
	}
	return -1
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
