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

package cli

import (
	"fmt"
	"os"
	"path"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vtreekit/boolcirc/dag"
	"github.com/vtreekit/boolcirc/format"
)

// GetFlag retrieves a bool flag, or exits with a diagnostic if cmd does not
// declare it — a flag-parsing failure here is a programming error, not a
// user error, so there is nothing graceful to do but report and stop.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return r
}

// GetString retrieves a string flag, or exits with a diagnostic.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return r
}

// decodedFormat bundles what reading a circuit file off disk requires from
// this point onward: the lines it decoded to, and the file extension that
// selects how they are compiled or reported.
type decodedFormat struct {
	lines []format.CircuitFormatLine
	ext   string
}

// readCircuitFile dispatches on filename extension to the right decoder,
// matching the teacher's readTraceFile/readSchemaFile idiom of picking a
// parser from a file's suffix rather than sniffing content.
func readCircuitFile(filename string) *decodedFormat {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	ext := path.Ext(filename)
	log.Debugf("decoding %s as %s", filename, ext)

	var (
		lines []format.CircuitFormatLine
		derr  error
	)
	r := strings.NewReader(string(bytes))
	switch ext {
	case ".sdd":
		lines, derr = format.DecodeSDD(r, filename)
	case ".cnf":
		lines, derr = format.DecodeCNF(r, filename)
	case ".dnf":
		lines, derr = format.DecodeDNF(r, filename)
	case ".vtree":
		lines, derr = format.DecodeVtree(r, filename)
	default:
		fmt.Printf("unsupported file extension %q\n", ext)
		os.Exit(2)
	}
	if derr != nil {
		fmt.Println(derr)
		os.Exit(1)
	}
	return &decodedFormat{lines: lines, ext: ext}
}

// compileDAG compiles a CNF/DNF decoded file into a logical DAG; it exits
// with a diagnostic for any other format, since SDD/vtree files compile
// into an SDD node, not a logical DAG (§7, Unsupported).
func compileDAG(b *dag.Builder, df *decodedFormat) *dag.Node {
	var (
		root *dag.Node
		err  error
	)
	switch df.ext {
	case ".cnf":
		root, err = format.CompileCNF(b, df.lines)
	case ".dnf":
		root, err = format.CompileDNF(b, df.lines)
	default:
		fmt.Printf("cannot compile a %s file into a logical DAG\n", df.ext)
		os.Exit(2)
	}
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	return root
}
