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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vtreekit/boolcirc/dag"
	"github.com/vtreekit/boolcirc/dag/query"
)

var queryCmd = &cobra.Command{
	Use:   "query <file>",
	Short: "run a structural or numeric query over a .cnf/.dnf circuit.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		df := readCircuitFile(args[0])
		b := dag.NewBuilder()
		root := compileDAG(b, df)

		switch {
		case GetFlag(cmd, "decomposable"):
			fmt.Println(query.IsDecomposable(root))
		case GetFlag(cmd, "smooth"):
			fmt.Println(query.IsSmooth(root))
		case GetFlag(cmd, "sat-prob"):
			log.Debug("running SatProb under the default ½ prior")
			fmt.Println(query.SatProb(root, nil).FloatString(6))
		case GetFlag(cmd, "model-count"):
			fmt.Println(query.ModelCount(root).FloatString(0))
		case GetFlag(cmd, "scope"):
			scope := query.VariableScope(root)
			for _, v := range scope.Sorted() {
				fmt.Printf("%d ", v)
			}
			fmt.Println()
		default:
			fmt.Println("specify exactly one of --decomposable, --smooth, --sat-prob, --model-count, --scope")
			os.Exit(2)
		}
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().Bool("decomposable", false, "report whether the circuit is decomposable")
	queryCmd.Flags().Bool("smooth", false, "report whether the circuit is smooth")
	queryCmd.Flags().Bool("sat-prob", false, "report the satisfying-assignment probability under the default ½ prior")
	queryCmd.Flags().Bool("model-count", false, "report the model count over the circuit's own variable scope")
	queryCmd.Flags().Bool("scope", false, "report the circuit's variable scope")
}
