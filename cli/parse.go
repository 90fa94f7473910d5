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

	"github.com/spf13/cobra"

	"github.com/vtreekit/boolcirc/dag"
	"github.com/vtreekit/boolcirc/dag/query"
	"github.com/vtreekit/boolcirc/format"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "parse a .sdd/.cnf/.dnf/.vtree file and report node/variable counts (for .sdd: node count and referenced vtree ids).",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		df := readCircuitFile(args[0])

		switch df.ext {
		case ".vtree":
			root, _, err := format.CompileVtree(df.lines)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			fmt.Printf("num_nodes=%d num_variables=%d\n", len(df.lines)-1, root.VarCount())
		case ".cnf", ".dnf":
			b := dag.NewBuilder()
			root := compileDAG(b, df)
			circuit := dag.Linearize(root)
			scope := query.VariableScope(root)
			fmt.Printf("num_nodes=%d num_variables=%d\n", circuit.NumNodes(), len(scope))
		case ".sdd":
			header := df.lines[0]
			vtreeIDs := make(map[int]bool)
			for _, l := range df.lines[1:] {
				if l.VtreeID >= 0 {
					vtreeIDs[l.VtreeID] = true
				}
			}
			fmt.Printf("num_nodes=%d num_vtree_ids_referenced=%d\n", header.Count, len(vtreeIDs))
		}
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
