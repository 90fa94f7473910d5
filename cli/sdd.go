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
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vtreekit/boolcirc/format"
	"github.com/vtreekit/boolcirc/sdd"
	"github.com/vtreekit/boolcirc/vtree"
)

var sddCmd = &cobra.Command{
	Use:   "sdd",
	Short: "operations over Sentential Decision Diagrams.",
}

var sddConjoinCmd = &cobra.Command{
	Use:   "conjoin <a.sdd> <b.sdd>",
	Short: "apply-conjoin two SDDs against a shared vtree and report the resulting node count.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		vtreePath := GetString(cmd, "vtree")
		if vtreePath == "" {
			fmt.Println("--vtree is required")
			os.Exit(2)
		}

		vtreeBytes, err := os.ReadFile(vtreePath)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		vlines, err := format.DecodeVtree(strings.NewReader(string(vtreeBytes)), vtreePath)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		root, byID, err := format.CompileVtree(vlines)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		mgr := sdd.NewManager(root)

		a := loadSDD(mgr, byID, args[0])
		b := loadSDD(mgr, byID, args[1])

		log.Debugf("conjoining %s and %s", args[0], args[1])
		result := sdd.Conjoin(mgr, a, b)

		if result.Kind() == sdd.KindDecision {
			fmt.Printf("num_elements=%d\n", len(result.Elements()))
		} else {
			fmt.Println(result)
		}
	},
}

// loadSDD decodes and compiles a .sdd file against mgr, which must already
// be rooted at the vtree byID resolves ids into.
func loadSDD(mgr *sdd.Manager, byID map[int]*vtree.Node, path string) *sdd.Node {
	bytes, err := os.ReadFile(path)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	lines, err := format.DecodeSDD(strings.NewReader(string(bytes)), path)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	node, err := format.CompileSDD(mgr, byID, lines)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	return node
}

func init() {
	rootCmd.AddCommand(sddCmd)
	sddCmd.AddCommand(sddConjoinCmd)
	sddConjoinCmd.Flags().String("vtree", "", "path to the shared .vtree file")
}
