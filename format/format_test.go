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
	"strings"
	"testing"

	"github.com/vtreekit/boolcirc/dag"
	"github.com/vtreekit/boolcirc/sdd"
)

func Test_DecodeSDD_RejectsEmptyFile(t *testing.T) {
	if _, err := DecodeSDD(strings.NewReader(""), "t.sdd"); err == nil {
		t.Fatalf("expected an error for an empty file")
	}
}

func Test_DecodeSDD_RejectsUnrecognizedPrefix(t *testing.T) {
	src := "sdd 1\nX 0\n"
	if _, err := DecodeSDD(strings.NewReader(src), "t.sdd"); err == nil {
		t.Fatalf("expected a ParseError for an unrecognized prefix")
	}
}

func Test_DecodeAndCompileSDD_SingleLiteral(t *testing.T) {
	vsrc := "vtree 1\nL 0 1\n"
	vlines, err := DecodeVtree(strings.NewReader(vsrc), "t.vtree")
	if err != nil {
		t.Fatalf("DecodeVtree: %v", err)
	}
	root, byID, err := CompileVtree(vlines)
	if err != nil {
		t.Fatalf("CompileVtree: %v", err)
	}

	ssrc := "sdd 1\nL 0 0 1\n"
	slines, err := DecodeSDD(strings.NewReader(ssrc), "t.sdd")
	if err != nil {
		t.Fatalf("DecodeSDD: %v", err)
	}

	mgr := sdd.NewManager(root)
	node, err := CompileSDD(mgr, byID, slines)
	if err != nil {
		t.Fatalf("CompileSDD: %v", err)
	}
	if node.Kind() != sdd.KindLiteral || node.Literal().Dimacs() != 1 {
		t.Fatalf("expected literal 1, got %v", node)
	}
}

func Test_DecodeAndCompileSDD_DecisionNode(t *testing.T) {
	vsrc := "vtree 3\nL 0 1\nL 1 2\nI 2 0 1\n"
	vlines, err := DecodeVtree(strings.NewReader(vsrc), "t.vtree")
	if err != nil {
		t.Fatalf("DecodeVtree: %v", err)
	}
	root, byID, err := CompileVtree(vlines)
	if err != nil {
		t.Fatalf("CompileVtree: %v", err)
	}

	// #0 = L(1) @ vtree 0, #1 = L(2) @ vtree 1, #2 = F, #3 = ¬L(1) @ vtree
	// 0, #4 = D{(#0,#1),(#3,#2)} @ vtree 2.
	ssrc := "sdd 5\nL 0 0 1\nL 1 1 2\nF 2\nL 3 0 -1\nD 4 2 2 0 1 3 2\n"
	slines, err := DecodeSDD(strings.NewReader(ssrc), "t.sdd")
	if err != nil {
		t.Fatalf("DecodeSDD: %v", err)
	}

	mgr := sdd.NewManager(root)
	node, err := CompileSDD(mgr, byID, slines)
	if err != nil {
		t.Fatalf("CompileSDD: %v", err)
	}
	if node.Kind() != sdd.KindDecision {
		t.Fatalf("expected a decision node, got %v", node)
	}
}

func Test_EncodeSDD_RoundTripsHeaderAndLiteral(t *testing.T) {
	lines := []CircuitFormatLine{
		{Kind: LineHeader, Text: "sdd", Count: 2},
		{Kind: LineLiteral, ID: 0, VtreeID: 0, Lit: 3},
	}
	var buf strings.Builder
	if err := EncodeSDD(&buf, lines); err != nil {
		t.Fatalf("EncodeSDD: %v", err)
	}
	decoded, err := DecodeSDD(strings.NewReader(buf.String()), "roundtrip")
	if err != nil {
		t.Fatalf("DecodeSDD on encoded output: %v", err)
	}
	if len(decoded) != 2 || decoded[1].Lit != 3 {
		t.Fatalf("round trip mismatch: %+v", decoded)
	}
}

func Test_DecodeVtree_RejectsUnresolvedChild(t *testing.T) {
	src := "vtree 1\nI 0 5 6\n"
	lines, err := DecodeVtree(strings.NewReader(src), "t.vtree")
	if err != nil {
		t.Fatalf("DecodeVtree: %v", err)
	}
	if _, _, err := CompileVtree(lines); err == nil {
		t.Fatalf("expected an error for unresolved children")
	}
}

func Test_DecodeCNF_CompilesConjunctionOfDisjunctions(t *testing.T) {
	src := "c a tiny example\np cnf 2 2\n1 2 0\n-1 -2 0\n"
	lines, err := DecodeCNF(strings.NewReader(src), "t.cnf")
	if err != nil {
		t.Fatalf("DecodeCNF: %v", err)
	}
	b := dag.NewBuilder()
	root, err := CompileCNF(b, lines)
	if err != nil {
		t.Fatalf("CompileCNF: %v", err)
	}
	if root.Kind() != dag.KindAnd || root.Arity() != 2 {
		t.Fatalf("expected a 2-clause conjunction, got %v", root)
	}
	for _, c := range root.Children() {
		if c.Kind() != dag.KindOr || c.Arity() != 2 {
			t.Fatalf("expected each clause to be a 2-literal disjunction, got %v", c)
		}
	}
}

func Test_DecodeCNF_RejectsMissingHeader(t *testing.T) {
	src := "1 2 0\n"
	if _, err := DecodeCNF(strings.NewReader(src), "t.cnf"); err == nil {
		t.Fatalf("expected an error when the header is missing")
	}
}

func Test_DecodeDNF_CompilesDisjunctionOfConjunctions(t *testing.T) {
	src := "p dnf 2 2\n1 2 0\n-1 -2 0\n"
	lines, err := DecodeDNF(strings.NewReader(src), "t.dnf")
	if err != nil {
		t.Fatalf("DecodeDNF: %v", err)
	}
	b := dag.NewBuilder()
	root, err := CompileDNF(b, lines)
	if err != nil {
		t.Fatalf("CompileDNF: %v", err)
	}
	if root.Kind() != dag.KindOr || root.Arity() != 2 {
		t.Fatalf("expected a 2-clause disjunction, got %v", root)
	}
}

func Test_ReadPSDDLines_WeightedTrueLeaf(t *testing.T) {
	src := "psdd 1\nT 0 0 1 0.5\n"
	lines, err := ReadPSDDLines(strings.NewReader(src), "t.psdd")
	if err != nil {
		t.Fatalf("ReadPSDDLines: %v", err)
	}
	if len(lines) != 2 || lines[1].Weight != 0.5 || lines[1].Var != 1 {
		t.Fatalf("unexpected decode: %+v", lines)
	}
}

func Test_ReadPSDDLines_DecisionWeightTriple(t *testing.T) {
	src := "psdd 1\nD 0 0 1 1 2 0.25\n"
	lines, err := ReadPSDDLines(strings.NewReader(src), "t.psdd")
	if err != nil {
		t.Fatalf("ReadPSDDLines: %v", err)
	}
	if len(lines[1].Elements) != 1 || lines[1].Elements[0].Weight != 0.25 {
		t.Fatalf("unexpected decision weight: %+v", lines[1])
	}
}

func Test_ReadLogisticLines_WeightedLiteralAndBias(t *testing.T) {
	src := "Logistic Circuit\nT 0 0 1 0.1 0.2\nF 1 0 2 -0.1\nB 0.9\n"
	lines, err := ReadLogisticLines(strings.NewReader(src), "t.circuit")
	if err != nil {
		t.Fatalf("ReadLogisticLines: %v", err)
	}
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	if lines[1].Negative || len(lines[1].Weights) != 2 {
		t.Fatalf("unexpected positive leaf decode: %+v", lines[1])
	}
	if !lines[2].Negative {
		t.Fatalf("expected the F-prefixed leaf to be negative: %+v", lines[2])
	}
	if lines[3].Kind != LineBias || lines[3].Weights[0] != 0.9 {
		t.Fatalf("unexpected bias decode: %+v", lines[3])
	}
}

func Test_ReadLogisticLines_Decision(t *testing.T) {
	src := "Logistic Circuit\nT 0 0 1 0.1\nT 1 1 2 0.2\nD 2 2 2 ( 0 1 0.3 0.4 ) ( 1 0 0.5 )\n"
	lines, err := ReadLogisticLines(strings.NewReader(src), "t.circuit")
	if err != nil {
		t.Fatalf("ReadLogisticLines: %v", err)
	}
	decision := lines[3]
	if decision.Kind != LineDecision || len(decision.Elements) != 2 {
		t.Fatalf("unexpected decision decode: %+v", decision)
	}
	if decision.Elements[0].Prime != 0 || decision.Elements[0].Sub != 1 {
		t.Fatalf("unexpected element decode: %+v", decision.Elements[0])
	}
}
