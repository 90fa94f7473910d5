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
	"strings"

	"github.com/vtreekit/boolcirc/boolerr"
)

// DecodeSDD decodes a ".sdd" file (§6) into an ordered sequence of
// CircuitFormatLine records. Ids are preserved exactly and lines are
// returned in source order; an unrecognized leading token is a ParseError,
// and no partial sequence is returned alongside it (§7).
func DecodeSDD(r io.Reader, source string) ([]CircuitFormatLine, error) {
	s := newLineScanner(r, source)
	var lines []CircuitFormatLine

	if !s.next() {
		return nil, s.fail("empty file, expected \"sdd <count>\" header")
	}
	if len(s.fields) != 2 || s.fields[0] != "sdd" {
		return nil, s.fail("expected \"sdd <count>\" header")
	}
	count, err := s.atoi(s.fields[1])
	if err != nil {
		return nil, err
	}
	lines = append(lines, CircuitFormatLine{Kind: LineHeader, Text: "sdd", Count: count, VtreeID: -1})

	for s.next() {
		line, err := decodeSDDLine(s)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	if err := s.err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func decodeSDDLine(s *lineScanner) (CircuitFormatLine, error) {
	switch s.fields[0] {
	case "c":
		return CircuitFormatLine{Kind: LineComment, Text: strings.Join(s.fields[1:], " "), VtreeID: -1}, nil
	case "T", "F":
		if err := s.expectArity(2); err != nil {
			return CircuitFormatLine{}, err
		}
		id, err := s.atoi(s.fields[1])
		if err != nil {
			return CircuitFormatLine{}, err
		}
		return CircuitFormatLine{Kind: LineConstant, ID: id, Value: s.fields[0] == "T", VtreeID: -1}, nil
	case "L":
		if err := s.expectArity(4); err != nil {
			return CircuitFormatLine{}, err
		}
		ints, err := s.ints(1)
		if err != nil {
			return CircuitFormatLine{}, err
		}
		return CircuitFormatLine{Kind: LineLiteral, ID: ints[0], VtreeID: ints[1], Lit: ints[2]}, nil
	case "D":
		if err := s.minArity(4); err != nil {
			return CircuitFormatLine{}, err
		}
		ints, err := s.ints(1)
		if err != nil {
			return CircuitFormatLine{}, err
		}
		id, vtreeID, n := ints[0], ints[1], ints[2]
		pairs := ints[3:]
		if len(pairs) != 2*n {
			return CircuitFormatLine{}, s.fail("decision element count does not match declared arity")
		}
		elements := make([]Element, n)
		for i := 0; i < n; i++ {
			elements[i] = Element{Prime: pairs[2*i], Sub: pairs[2*i+1]}
		}
		return CircuitFormatLine{Kind: LineDecision, ID: id, VtreeID: vtreeID, Elements: elements}, nil
	default:
		return CircuitFormatLine{}, s.fail("unrecognized line prefix " + strings.Join(s.fields[:1], ""))
	}
}

// EncodeSDD writes lines back out in ".sdd" textual form (§6), assigning no
// new ids: it is the caller's responsibility to have produced lines whose
// ids are already in children-before-parents order.
func EncodeSDD(w io.Writer, lines []CircuitFormatLine) error {
	for _, l := range lines {
		var err error
		switch l.Kind {
		case LineHeader:
			_, err = fmt.Fprintf(w, "sdd %d\n", l.Count)
		case LineComment:
			_, err = fmt.Fprintf(w, "c %s\n", l.Text)
		case LineConstant:
			prefix := "F"
			if l.Value {
				prefix = "T"
			}
			_, err = fmt.Fprintf(w, "%s %d\n", prefix, l.ID)
		case LineLiteral:
			_, err = fmt.Fprintf(w, "L %d %d %d\n", l.ID, l.VtreeID, l.Lit)
		case LineDecision:
			var b strings.Builder
			fmt.Fprintf(&b, "D %d %d %d", l.ID, l.VtreeID, len(l.Elements))
			for _, e := range l.Elements {
				fmt.Fprintf(&b, " %d %d", e.Prime, e.Sub)
			}
			b.WriteByte('\n')
			_, err = w.Write([]byte(b.String()))
		default:
			err = &boolerr.Unsupported{Operation: "EncodeSDD", Reason: "line kind not valid in the SDD format"}
		}
		if err != nil {
			return err
		}
	}
	return nil
}
