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
	"io"
	"strings"
)

// ReadPSDDLines decodes a ".psdd" file (§6) into CircuitFormatLine records:
// the same shapes as ".sdd" plus weighted true leaves ("T <id> <vtree-id>
// <var> <w>") and decision elements carrying a weight triple ("p s w"
// rather than plain "p s"). Weights are opaque payload to the core — no
// query or rewrite in this repository reads them — so this decoder is
// line-level only and is not followed by a Compile step (see
// SPEC_FULL.md §4).
func ReadPSDDLines(r io.Reader, source string) ([]CircuitFormatLine, error) {
	s := newLineScanner(r, source)
	var lines []CircuitFormatLine

	if !s.next() {
		return nil, s.fail("empty file, expected \"psdd <count>\" header")
	}
	if len(s.fields) != 2 || s.fields[0] != "psdd" {
		return nil, s.fail("expected \"psdd <count>\" header")
	}
	count, err := s.atoi(s.fields[1])
	if err != nil {
		return nil, err
	}
	lines = append(lines, CircuitFormatLine{Kind: LineHeader, Text: "psdd", Count: count, VtreeID: -1})

	for s.next() {
		line, err := decodePSDDLine(s)
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

func decodePSDDLine(s *lineScanner) (CircuitFormatLine, error) {
	switch s.fields[0] {
	case "c":
		return CircuitFormatLine{Kind: LineComment, Text: strings.Join(s.fields[1:], " "), VtreeID: -1}, nil
	case "F":
		if err := s.expectArity(2); err != nil {
			return CircuitFormatLine{}, err
		}
		id, err := s.atoi(s.fields[1])
		if err != nil {
			return CircuitFormatLine{}, err
		}
		return CircuitFormatLine{Kind: LineConstant, ID: id, Value: false, VtreeID: -1}, nil
	case "T":
		switch len(s.fields) {
		case 2:
			id, err := s.atoi(s.fields[1])
			if err != nil {
				return CircuitFormatLine{}, err
			}
			return CircuitFormatLine{Kind: LineConstant, ID: id, Value: true, VtreeID: -1}, nil
		case 5:
			id, err := s.atoi(s.fields[1])
			if err != nil {
				return CircuitFormatLine{}, err
			}
			vtreeID, err := s.atoi(s.fields[2])
			if err != nil {
				return CircuitFormatLine{}, err
			}
			v, err := s.atoi(s.fields[3])
			if err != nil {
				return CircuitFormatLine{}, err
			}
			w, err := s.atof(s.fields[4])
			if err != nil {
				return CircuitFormatLine{}, err
			}
			return CircuitFormatLine{Kind: LineConstant, ID: id, Value: true, VtreeID: vtreeID, Var: v, Weight: w}, nil
		default:
			return CircuitFormatLine{}, s.fail("wrong number of tokens on a PSDD T line")
		}
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
		ints0, err := s.atoi(s.fields[1])
		if err != nil {
			return CircuitFormatLine{}, err
		}
		vtreeID, err := s.atoi(s.fields[2])
		if err != nil {
			return CircuitFormatLine{}, err
		}
		n, err := s.atoi(s.fields[3])
		if err != nil {
			return CircuitFormatLine{}, err
		}
		rest := s.fields[4:]
		if len(rest) != 3*n {
			return CircuitFormatLine{}, s.fail("decision element count does not match declared arity")
		}
		elements := make([]Element, n)
		for i := 0; i < n; i++ {
			p, err := s.atoi(rest[3*i])
			if err != nil {
				return CircuitFormatLine{}, err
			}
			sub, err := s.atoi(rest[3*i+1])
			if err != nil {
				return CircuitFormatLine{}, err
			}
			w, err := s.atof(rest[3*i+2])
			if err != nil {
				return CircuitFormatLine{}, err
			}
			elements[i] = Element{Prime: p, Sub: sub, Weight: w}
		}
		return CircuitFormatLine{Kind: LineDecision, ID: ints0, VtreeID: vtreeID, Elements: elements}, nil
	default:
		return CircuitFormatLine{}, s.fail("unrecognized line prefix " + s.fields[0])
	}
}
