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

// DecodeVtree decodes a ".vtree" file (§6) into an ordered sequence of
// CircuitFormatLine records: a "vtree <count>" header followed by
// children-before-parents "L <id> <var>" / "I <id> <left-id> <right-id>"
// lines.
func DecodeVtree(r io.Reader, source string) ([]CircuitFormatLine, error) {
	s := newLineScanner(r, source)
	var lines []CircuitFormatLine

	if !s.next() {
		return nil, s.fail("empty file, expected \"vtree <count>\" header")
	}
	if len(s.fields) != 2 || s.fields[0] != "vtree" {
		return nil, s.fail("expected \"vtree <count>\" header")
	}
	count, err := s.atoi(s.fields[1])
	if err != nil {
		return nil, err
	}
	lines = append(lines, CircuitFormatLine{Kind: LineHeader, Text: "vtree", Count: count, VtreeID: -1})

	for s.next() {
		switch s.fields[0] {
		case "L":
			if err := s.expectArity(3); err != nil {
				return nil, err
			}
			ints, err := s.ints(1)
			if err != nil {
				return nil, err
			}
			lines = append(lines, CircuitFormatLine{Kind: LineVtreeLeaf, ID: ints[0], Var: ints[1], VtreeID: -1})
		case "I":
			if err := s.expectArity(4); err != nil {
				return nil, err
			}
			ints, err := s.ints(1)
			if err != nil {
				return nil, err
			}
			lines = append(lines, CircuitFormatLine{Kind: LineVtreeInner, ID: ints[0], Left: ints[1], Right: ints[2], VtreeID: -1})
		default:
			return nil, s.fail("unrecognized line prefix " + strings.Join(s.fields[:1], ""))
		}
	}
	if err := s.err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// EncodeVtree writes lines back out in ".vtree" textual form.
func EncodeVtree(w io.Writer, lines []CircuitFormatLine) error {
	for _, l := range lines {
		var err error
		switch l.Kind {
		case LineHeader:
			_, err = fmt.Fprintf(w, "vtree %d\n", l.Count)
		case LineVtreeLeaf:
			_, err = fmt.Fprintf(w, "L %d %d\n", l.ID, l.Var)
		case LineVtreeInner:
			_, err = fmt.Fprintf(w, "I %d %d %d\n", l.ID, l.Left, l.Right)
		default:
			err = &boolerr.Unsupported{Operation: "EncodeVtree", Reason: "line kind not valid in the vtree format"}
		}
		if err != nil {
			return err
		}
	}
	return nil
}
