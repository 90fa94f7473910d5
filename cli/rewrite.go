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
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vtreekit/boolcirc/dag"
	"github.com/vtreekit/boolcirc/dag/rewrite"
	"github.com/vtreekit/boolcirc/lit"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite <file>",
	Short: "apply a rewrite to a .cnf/.dnf circuit and report the resulting node count.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		df := readCircuitFile(args[0])
		b := dag.NewBuilder()
		root := compileDAG(b, df)

		forgetExpr := GetString(cmd, "forget")
		var result *dag.Node
		switch {
		case GetFlag(cmd, "propagate-constants"):
			log.Debug("running PropagateConstants")
			result = rewrite.PropagateConstants(b, root)
		case forgetExpr != "":
			predicate, err := parseForgetPredicate(forgetExpr)
			if err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
			log.Debugf("running Forget(%s)", forgetExpr)
			result = rewrite.Forget(b, root, predicate)
		case GetFlag(cmd, "smooth"):
			log.Debug("running Smooth")
			result = rewrite.Smooth(b, root)
		default:
			fmt.Println("specify exactly one of --propagate-constants, --forget=<pred>, --smooth")
			os.Exit(2)
			return
		}

		circuit := dag.Linearize(result)
		fmt.Printf("num_nodes=%d\n", circuit.NumNodes())

		if out := GetString(cmd, "out"); out != "" {
			writeDAGDump(out, circuit)
		}
	},
}

func init() {
	rootCmd.AddCommand(rewriteCmd)
	rewriteCmd.Flags().Bool("propagate-constants", false, "apply constant propagation")
	rewriteCmd.Flags().String("forget", "", "apply variable forgetting; predicate is \">N\", \"<N\", \">=N\", \"<=N\", \"=N\", or a comma-separated variable list")
	rewriteCmd.Flags().Bool("smooth", false, "apply smoothing")
	rewriteCmd.Flags().String("out", "", "write a one-node-per-line dump of the rewritten circuit to this path")
}

// parseForgetPredicate turns a CLI predicate expression into the
// func(lit.Var) bool that rewrite.Forget expects. This is CLI-only syntax,
// not part of the core: the core's contract is simply "a predicate".
func parseForgetPredicate(expr string) (func(lit.Var) bool, error) {
	for _, op := range []string{">=", "<=", ">", "<", "="} {
		if rest, ok := strings.CutPrefix(expr, op); ok {
			n, err := strconv.Atoi(strings.TrimSpace(rest))
			if err != nil {
				return nil, fmt.Errorf("forget predicate %q: %w", expr, err)
			}
			threshold := lit.Var(n)
			switch op {
			case ">=":
				return func(v lit.Var) bool { return v >= threshold }, nil
			case "<=":
				return func(v lit.Var) bool { return v <= threshold }, nil
			case ">":
				return func(v lit.Var) bool { return v > threshold }, nil
			case "<":
				return func(v lit.Var) bool { return v < threshold }, nil
			case "=":
				return func(v lit.Var) bool { return v == threshold }, nil
			}
		}
	}
	set := make(map[lit.Var]bool)
	for _, tok := range strings.Split(expr, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return nil, fmt.Errorf("forget predicate %q: %w", expr, err)
		}
		set[lit.Var(n)] = true
	}
	return func(v lit.Var) bool { return set[v] }, nil
}

func writeDAGDump(path string, circuit *dag.Circuit) {
	var b strings.Builder
	for _, n := range circuit.Nodes() {
		b.WriteString(n.String())
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
