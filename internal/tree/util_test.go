/*
 Copyright (C) 2025 Douglas Wayne Potter

 This program is free software: you can redistribute it and/or modify
 it under the terms of the GNU Affero General Public License as
 published by the Free Software Foundation, either version 3 of the
 License, or (at your option) any later version.

 This program is distributed in the hope that it will be useful,
 but WITHOUT ANY WARRANTY; without even the implied warranty of
 MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 GNU Affero General Public License for more details.

 You should have received a copy of the GNU Affero General Public License
 along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package tree

import (
	"io"
	"os"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

func captureStdout(t *testing.T, f func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	assert.NilError(t, err)
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	f()

	assert.NilError(t, w.Close())
	out, err := io.ReadAll(r)
	assert.NilError(t, err)
	return string(out)
}

// PrintTree must walk both branches of a Branch()ed node, not print the
// diffBranchChild subtree twice while skipping bothBranchChild.
func TestPrintTreeVisitsBothAndDiffBranches(t *testing.T) {
	root := CreateRoot()
	both, diff, err := root.Branch(1.0, 1, 2)
	assert.NilError(t, err)

	out := captureStdout(t, func() {
		assert.NilError(t, PrintTree([]*Node{both, diff}))
	})

	assert.Assert(t, strings.Contains(out, "Kind:1"))
	assert.Assert(t, strings.Contains(out, "Kind:2"))
}

func TestPrintTreeRejectsNodesWithDifferentRoots(t *testing.T) {
	rootA := CreateRoot()
	rootB := CreateRoot()
	bothA, _, err := rootA.Branch(1.0, 1, 2)
	assert.NilError(t, err)
	_, diffB, err := rootB.Branch(1.0, 1, 2)
	assert.NilError(t, err)

	err = PrintTree([]*Node{bothA, diffB})
	assert.ErrorContains(t, err, "two different root nodes")
}

func TestPrintTreeOnEmptyInputIsNoOp(t *testing.T) {
	assert.NilError(t, PrintTree(nil))
}
