package nfa

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// FA text format: one entity per line. The first line is the initial
// state. Lines of three whitespace-separated tokens are transition rules
// "source destination symbol" (symbol in any standard numeric base, e.g.
// 0x61). The first subsequent single-token line switches to the
// final-state section; every line from there on is a final state.

var (
	reTransition = regexp.MustCompile(`^\w+\s+\w+\s+\w+$`)
	reState      = regexp.MustCompile(`^\w+$`)
)

// ErrInvalidLine is returned (wrapped, with the offending line quoted)
// when a line matches neither grammar expected at its position.
var ErrInvalidLine = errors.New("invalid syntax")

const (
	sectionInitial = iota
	sectionRules
	sectionFinals
)

// ParseFA reads an automaton in FA format. Parsing aborts on the first
// malformed line; no partial automaton is returned.
func ParseFA(r io.Reader) (*Nfa, error) {
	out := New()
	section := sectionInitial

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()

		switch section {
		case sectionInitial:
			if !reState.MatchString(line) {
				return nil, lineErr(line)
			}
			s, err := strconv.Atoi(line)
			if err != nil {
				return nil, lineErr(line)
			}
			out.SetInitial(s)
			section = sectionRules

		case sectionRules:
			if reTransition.MatchString(line) {
				fields := strings.Fields(line)
				p, err1 := strconv.Atoi(fields[0])
				q, err2 := strconv.Atoi(fields[1])
				symbol, err3 := strconv.ParseInt(fields[2], 0, 64)
				if err1 != nil || err2 != nil || err3 != nil {
					return nil, lineErr(line)
				}
				if err := out.AddRule(p, q, int(symbol)); err != nil {
					return nil, err
				}
			} else if reState.MatchString(line) {
				s, err := strconv.Atoi(line)
				if err != nil {
					return nil, lineErr(line)
				}
				out.AddFinal(s)
				section = sectionFinals
			} else {
				return nil, lineErr(line)
			}

		case sectionFinals:
			if !reState.MatchString(line) {
				return nil, lineErr(line)
			}
			s, err := strconv.Atoi(line)
			if err != nil {
				return nil, lineErr(line)
			}
			out.AddFinal(s)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ReadFA parses the FA-format file at path.
func ReadFA(path string) (*Nfa, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseFA(f)
}

// WriteFA serializes the automaton in FA format: the initial state, then
// one line per (source, destination, symbol) rule with the symbol in
// hexadecimal, then one line per final state. Output is sorted so equal
// automata serialize identically.
func (a *Nfa) WriteFA(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", a.initial)
	a.Rules(func(p, q, symbol int) {
		fmt.Fprintf(bw, "%d %d %#x\n", p, q, symbol)
	})
	for _, s := range a.Finals() {
		fmt.Fprintf(bw, "%d\n", s)
	}
	return bw.Flush()
}

// SaveFA writes the automaton in FA format to the file at path.
func (a *Nfa) SaveFA(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := a.WriteFA(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func lineErr(line string) error {
	return fmt.Errorf("%w: %q", ErrInvalidLine, line)
}
