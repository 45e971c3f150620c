package machine

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Pair bundles the two mode-specific views of one input line: the same
// button bank paired once with the toggle target (diagram bits) and once
// with the counter target (braced values).
type Pair struct {
	// Lights is the toggle-mode machine; targets are the diagram bits.
	Lights *Machine
	// Counters is the counter-mode machine; targets are the braced values.
	Counters *Machine
}

// ParseLine parses one machine line of the form
//
//	[<diagram>] (<idx,idx,...>)+ {<value,value,...>}
//
// and returns both mode views over the shared button bank.
//
// Structural violations fail fast:
//   - ErrBadLine for any deviation from the grammar (missing or unordered
//     delimiters, empty diagram, no buttons, non '#'/'.' diagram runes,
//     unparsable numbers);
//   - ErrLengthMismatch when the counter list is not parallel to the diagram;
//   - ErrIndexOutOfRange / ErrNegativeTarget from Machine construction.
func ParseLine(line string) (Pair, error) {
	diagram, rest, err := cutDelimited(line, '[', ']')
	if err != nil {
		return Pair{}, err
	}
	if len(diagram) == 0 {
		return Pair{}, ErrBadLine
	}
	bits := make([]int, len(diagram))
	for i, r := range diagram {
		switch r {
		case '#':
			bits[i] = 1
		case '.':
			bits[i] = 0
		default:
			return Pair{}, ErrBadLine
		}
	}

	var buttons [][]int
	for {
		var group string
		group, rest, err = cutDelimited(rest, '(', ')')
		if err != nil {
			break // no further button group; fall through to the brace section
		}
		var idxs []int
		if idxs, err = parseIntList(group); err != nil {
			return Pair{}, err
		}
		buttons = append(buttons, idxs)
	}
	if len(buttons) == 0 {
		return Pair{}, ErrBadLine
	}

	values, rest, err := cutDelimited(rest, '{', '}')
	if err != nil {
		return Pair{}, err
	}
	if strings.TrimSpace(rest) != "" {
		return Pair{}, ErrBadLine
	}
	counters, err := parseIntList(values)
	if err != nil {
		return Pair{}, err
	}
	if len(counters) != len(bits) {
		return Pair{}, ErrLengthMismatch
	}

	lights, err := New(bits, buttons)
	if err != nil {
		return Pair{}, err
	}
	counterM, err := New(counters, buttons)
	if err != nil {
		return Pair{}, err
	}
	return Pair{Lights: lights, Counters: counterM}, nil
}

// Parse reads machine lines from r, one machine per non-blank line, and
// returns them in input order. Errors are annotated with the 1-based line
// number and wrap the underlying sentinel (match with errors.Is).
func Parse(r io.Reader) ([]Pair, error) {
	var (
		pairs []Pair
		ln    int
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		p, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("machine: line %d: %w", ln, err)
		}
		pairs = append(pairs, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("machine: read input: %w", err)
	}
	return pairs, nil
}

// cutDelimited extracts the first "open…close" segment of s, requiring
// only whitespace before open, and returns (inner, remainder-after-close).
// Returns ErrBadLine when the segment is absent or malformed.
func cutDelimited(s string, open, closing byte) (string, string, error) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	if i == len(s) || s[i] != open {
		return "", "", ErrBadLine
	}
	j := strings.IndexByte(s[i+1:], closing)
	if j < 0 {
		return "", "", ErrBadLine
	}
	return s[i+1 : i+1+j], s[i+1+j+1:], nil
}

// parseIntList parses a comma-separated list of decimal integers,
// tolerating surrounding spaces per element. An empty list is ErrBadLine:
// the grammar has no zero-element groups.
func parseIntList(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, ErrBadLine
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, ErrBadLine
		}
		out = append(out, v)
	}
	return out, nil
}
