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
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/vtreekit/boolcirc/boolerr"
)

// lineScanner wraps bufio.Scanner with the bookkeeping every decoder here
// needs: the 1-based source line number (for diagnostics) and a source
// name to attach to ParseError.
type lineScanner struct {
	sc     *bufio.Scanner
	source string
	lineNo int
	fields []string
}

func newLineScanner(r io.Reader, source string) *lineScanner {
	return &lineScanner{sc: bufio.NewScanner(r), source: source}
}

// next advances to the next non-blank line and splits it on whitespace,
// returning false at EOF.
func (s *lineScanner) next() bool {
	for s.sc.Scan() {
		s.lineNo++
		text := strings.TrimSpace(s.sc.Text())
		if text == "" {
			continue
		}
		s.fields = strings.Fields(text)
		return true
	}
	return false
}

func (s *lineScanner) err() error {
	return s.sc.Err()
}

func (s *lineScanner) fail(reason string) error {
	return &boolerr.ParseError{Line: s.lineNo, Source: s.source, Reason: reason}
}

// expectArity requires the current line to have exactly n fields.
func (s *lineScanner) expectArity(n int) error {
	if len(s.fields) != n {
		return s.fail("wrong number of tokens on line")
	}
	return nil
}

// minArity requires the current line to have at least n fields.
func (s *lineScanner) minArity(n int) error {
	if len(s.fields) < n {
		return s.fail("too few tokens on line")
	}
	return nil
}

func (s *lineScanner) atoi(field string) (int, error) {
	v, err := strconv.Atoi(field)
	if err != nil {
		return 0, s.fail("expected an integer, got " + strconv.Quote(field))
	}
	return v, nil
}

func (s *lineScanner) atof(field string) (float64, error) {
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, s.fail("expected a number, got " + strconv.Quote(field))
	}
	return v, nil
}

// ints parses fields[from:] as a slice of signed integers.
func (s *lineScanner) ints(from int) ([]int, error) {
	out := make([]int, 0, len(s.fields)-from)
	for _, f := range s.fields[from:] {
		v, err := s.atoi(f)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// floats parses fields[from:] as a slice of floating-point weights.
func (s *lineScanner) floats(from int) ([]float64, error) {
	out := make([]float64, 0, len(s.fields)-from)
	for _, f := range s.fields[from:] {
		v, err := s.atof(f)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
