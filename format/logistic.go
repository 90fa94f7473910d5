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

// ReadLogisticLines decodes a ".circuit" Logistic Circuit file (§6) into
// CircuitFormatLine records. Like ReadPSDDLines, this is a line-level
// decoder only: the per-leaf/per-element weight vectors are opaque to
// every query and rewrite in this repository, so there is no Compile step
// for this format (see SPEC_FULL.md §4).
func ReadLogisticLines(r io.Reader, source string) ([]CircuitFormatLine, error) {
	s := newLineScanner(r, source)
	var lines []CircuitFormatLine

	if !s.next() {
		return nil, s.fail("empty file, expected \"Logistic Circuit\" header")
	}
	if strings.Join(s.fields, " ") != "Logistic Circuit" {
		return nil, s.fail("expected \"Logistic Circuit\" header")
	}
	lines = append(lines, CircuitFormatLine{Kind: LineHeader, Text: "Logistic Circuit", VtreeID: -1})

	for s.next() {
		line, err := decodeLogisticLine(s)
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

func decodeLogisticLine(s *lineScanner) (CircuitFormatLine, error) {
	switch s.fields[0] {
	case "c":
		return CircuitFormatLine{Kind: LineComment, Text: strings.Join(s.fields[1:], " "), VtreeID: -1}, nil
	case "T", "F":
		if err := s.minArity(4); err != nil {
			return CircuitFormatLine{}, err
		}
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
		weights, err := s.floats(4)
		if err != nil {
			return CircuitFormatLine{}, err
		}
		return CircuitFormatLine{
			Kind: LineLiteral, ID: id, VtreeID: vtreeID, Var: v,
			Negative: s.fields[0] == "F", Weights: weights,
		}, nil
	case "D":
		return decodeLogisticDecision(s)
	case "B":
		weights, err := s.floats(1)
		if err != nil {
			return CircuitFormatLine{}, err
		}
		return CircuitFormatLine{Kind: LineBias, Weights: weights, VtreeID: -1}, nil
	default:
		return CircuitFormatLine{}, s.fail("unrecognized line prefix " + s.fields[0])
	}
}

// decodeLogisticDecision parses "D <id> <vtree-id> <n> ( prime sub
// weights… ) …": n parenthesized element groups, each starting with a
// prime/sub pair followed by a weight vector of unconstrained length.
func decodeLogisticDecision(s *lineScanner) (CircuitFormatLine, error) {
	if err := s.minArity(4); err != nil {
		return CircuitFormatLine{}, err
	}
	id, err := s.atoi(s.fields[1])
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
	elements := make([]Element, 0, n)
	var weights [][]float64
	for len(rest) > 0 {
		if rest[0] != "(" {
			return CircuitFormatLine{}, s.fail("expected '(' opening a decision element group")
		}
		end := -1
		for i, tok := range rest {
			if tok == ")" {
				end = i
				break
			}
		}
		if end < 0 {
			return CircuitFormatLine{}, s.fail("unterminated decision element group")
		}
		body := rest[1:end]
		if len(body) < 2 {
			return CircuitFormatLine{}, s.fail("decision element group needs at least a prime and a sub")
		}
		prime, err := s.atoi(body[0])
		if err != nil {
			return CircuitFormatLine{}, err
		}
		sub, err := s.atoi(body[1])
		if err != nil {
			return CircuitFormatLine{}, err
		}
		ws := make([]float64, 0, len(body)-2)
		for _, f := range body[2:] {
			v, err := s.atof(f)
			if err != nil {
				return CircuitFormatLine{}, err
			}
			ws = append(ws, v)
		}
		elements = append(elements, Element{Prime: prime, Sub: sub})
		weights = append(weights, ws)
		rest = rest[end+1:]
	}
	if len(elements) != n {
		return CircuitFormatLine{}, s.fail("decision element group count does not match declared arity")
	}
	// Flatten per-element weight vectors into Weights, one contiguous run
	// per element in order; Elements carries the (prime, sub) pairs.
	flat := make([]float64, 0)
	for _, ws := range weights {
		flat = append(flat, ws...)
	}
	return CircuitFormatLine{Kind: LineDecision, ID: id, VtreeID: vtreeID, Elements: elements, Weights: flat}, nil
}
