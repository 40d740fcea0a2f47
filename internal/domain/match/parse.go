package match

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/honeycarbs/hiring-mcp/internal/domain"
)

// Analysis is the structured reading of a generated candidate comparison
type Analysis struct {
	Selection      string // raw value after SELECTED:
	Reason         string
	MatchingPoints []string
	Gaps           []string
}

// Selection is a parsed SELECTED: marker
type Selection struct {
	ID    string // raw id, when the marker names one
	Index int    // 1-based, when the marker reads "Candidate N"
	None  bool
}

var (
	labelRe     = regexp.MustCompile(`(?i)^[\s*#>_]*(selected|reason|matching points|gaps)[\s*_]*:[\s*_]*(.*)$`)
	candidateRe = regexp.MustCompile(`(?i)^candidate\s*#?\s*(\d+)\b`)
	bulletRe    = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)])\s*`)
	// leading id followed by a comma, semicolon, parenthesis or dash and a name
	leadingIDRe = regexp.MustCompile(`^(\S+?)(?:\s*[,;(]|\s+[-—–]\s|\s*[—–])`)
)

// ParseAnalysis splits generated text into its labelled sections
func ParseAnalysis(text string) Analysis {
	sections := map[string][]string{}
	current := ""
	for _, line := range strings.Split(text, "\n") {
		if m := labelRe.FindStringSubmatch(line); m != nil {
			current = strings.ToLower(m[1])
			if _, seen := sections[current]; seen {
				// keep the first occurrence of each label
				current = "-"
				continue
			}
			sections[current] = nil
			if rest := strings.TrimSpace(m[2]); rest != "" {
				sections[current] = append(sections[current], rest)
			}
			continue
		}
		if current == "" || current == "-" {
			continue
		}
		if l := strings.TrimSpace(line); l != "" {
			sections[current] = append(sections[current], l)
		}
	}

	a := Analysis{
		Reason:         strings.Join(sections["reason"], " "),
		MatchingPoints: bullets(sections["matching points"]),
		Gaps:           bullets(sections["gaps"]),
	}
	if sel := sections["selected"]; len(sel) > 0 {
		a.Selection = sel[0]
	}
	return a
}

// ParseSelection reads the SELECTED: marker; ok is false when none is present
func ParseSelection(text string) (Selection, bool) {
	raw := ParseAnalysis(text).Selection
	return parseSelectionValue(raw)
}

func parseSelectionValue(raw string) (Selection, bool) {
	v := strings.Trim(strings.TrimSpace(raw), "[]()\"'`*_ ")
	v = strings.TrimRight(v, ".,;:")
	if v == "" {
		return Selection{}, false
	}

	upper := strings.ToUpper(v)
	if upper == "NONE" || strings.HasPrefix(upper, "NONE ") || strings.HasPrefix(upper, "NO CANDIDATE") {
		return Selection{None: true}, true
	}
	if m := candidateRe.FindStringSubmatch(v); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil && n > 0 {
			return Selection{Index: n}, true
		}
	}
	// "42 - Maya", "2 (Anna)" and "2, Anna" keep only the leading id
	if m := leadingIDRe.FindStringSubmatch(v); m != nil {
		v = m[1]
	}
	return Selection{ID: v}, true
}

// Resolve maps a selection onto candidates, returning the chosen position
func (s Selection) Resolve(candidates []domain.CandidateProfile) (int, bool) {
	if s.None {
		return -1, false
	}
	if s.Index > 0 {
		if s.Index <= len(candidates) {
			return s.Index - 1, true
		}
		return -1, false
	}
	for i, c := range candidates {
		if c.ID == s.ID {
			return i, true
		}
	}
	for i, c := range candidates {
		if strings.EqualFold(c.Name, s.ID) {
			return i, true
		}
	}
	return -1, false
}

func bullets(lines []string) []string {
	var out []string
	for _, l := range lines {
		l = strings.TrimSpace(bulletRe.ReplaceAllString(l, ""))
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}
