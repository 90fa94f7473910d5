// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"fmt"
	"io"

	"github.com/vtreekit/boolcirc/boolerr"
)

// DecodeCNF decodes a DIMACS-style ".cnf" file (§6): "c" comments, a
// "p cnf <nvars> <nclauses>" header, then whitespace-separated signed
// literals terminated by a trailing 0 per clause.
func DecodeCNF(r io.Reader, source string) ([]CircuitFormatLine, error) {
	return decodeDimacs(r, source, "cnf")
}

// DecodeDNF decodes the same DIMACS-like shape under a "p dnf ..." header;
// the literal/clause grammar is identical, only the combining operator
// differs downstream at Compile time (§6).
func DecodeDNF(r io.Reader, source string) ([]CircuitFormatLine, error) {
	return decodeDimacs(r, source, "dnf")
}

func decodeDimacs(r io.Reader, source, want string) ([]CircuitFormatLine, error) {
	s := newLineScanner(r, source)
	var lines []CircuitFormatLine
	headerSeen := false

	for s.next() {
		switch s.fields[0] {
		case "c":
			lines = append(lines, CircuitFormatLine{Kind: LineComment, Text: joinFrom(s.fields, 1), VtreeID: -1})
		case "p":
			if headerSeen {
				return nil, s.fail("duplicate header line")
			}
			if err := s.expectArity(4); err != nil {
				return nil, err
			}
			if s.fields[1] != want {
				return nil, s.fail(fmt.Sprintf("expected \"p %s ...\" header", want))
			}
			nvars, err := s.atoi(s.fields[2])
			if err != nil {
				return nil, err
			}
			nclauses, err := s.atoi(s.fields[3])
			if err != nil {
				return nil, err
			}
			lines = append(lines, CircuitFormatLine{Kind: LineHeader, Text: want, NumVars: nvars, NumClauses: nclauses, VtreeID: -1})
			headerSeen = true
		default:
			if !headerSeen {
				return nil, s.fail("clause encountered before header")
			}
			ints, err := s.ints(0)
			if err != nil {
				return nil, err
			}
			if len(ints) == 0 || ints[len(ints)-1] != 0 {
				return nil, s.fail("clause must be terminated by a trailing 0")
			}
			lines = append(lines, CircuitFormatLine{Kind: LineClause, Clause: ints[:len(ints)-1], VtreeID: -1})
		}
	}
	if err := s.err(); err != nil {
		return nil, err
	}
	if !headerSeen {
		return nil, s.fail("missing \"p " + want + " ...\" header")
	}
	return lines, nil
}

func joinFrom(fields []string, from int) string {
	out := ""
	for i, f := range fields[from:] {
		if i > 0 {
			out += " "
		}
		out += f
	}
	return out
}

// EncodeCNF writes lines back out in DIMACS ".cnf" textual form.
func EncodeCNF(w io.Writer, lines []CircuitFormatLine) error {
	return encodeDimacs(w, lines, "cnf")
}

// EncodeDNF writes lines back out in DIMACS-like ".dnf" textual form.
func EncodeDNF(w io.Writer, lines []CircuitFormatLine) error {
	return encodeDimacs(w, lines, "dnf")
}

func encodeDimacs(w io.Writer, lines []CircuitFormatLine, want string) error {
	for _, l := range lines {
		var err error
		switch l.Kind {
		case LineComment:
			_, err = fmt.Fprintf(w, "c %s\n", l.Text)
		case LineHeader:
			_, err = fmt.Fprintf(w, "p %s %d %d\n", want, l.NumVars, l.NumClauses)
		case LineClause:
			for _, lit := range l.Clause {
				if _, err = fmt.Fprintf(w, "%d ", lit); err != nil {
					return err
				}
			}
			_, err = fmt.Fprint(w, "0\n")
		default:
			err = &boolerr.Unsupported{Operation: "Encode" + want, Reason: "line kind not valid in the " + want + " format"}
		}
		if err != nil {
			return err
		}
	}
	return nil
}
