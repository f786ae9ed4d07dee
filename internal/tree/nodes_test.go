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
	"testing"

	"gotest.tools/v3/assert"
)

func TestCreateInitialNodesReturnsOneRoot(t *testing.T) {
	nodes := CreateInitialNodes()
	assert.Equal(t, len(nodes), 1)
	assert.Equal(t, nodes[0].Kind, Root)
}

func TestBranchProducesBothAndDiffChildren(t *testing.T) {
	root := CreateRoot()
	both, diff, err := root.Branch(3.5, 1, 2)
	assert.NilError(t, err)
	assert.Equal(t, both.Kind, NodeKind(BothBranch))
	assert.Equal(t, diff.Kind, NodeKind(DiffBranch))
	assert.Equal(t, both.Parent, root)
	assert.Equal(t, diff.Parent, root)
	assert.Equal(t, both.LowerBound, 3.5)
}

func TestBranchRejectsUnorderedConstraints(t *testing.T) {
	root := CreateRoot()
	_, _, err := root.Branch(1.0, 2, 1)
	assert.ErrorContains(t, err, "branchConstraintOne < branchConstraintTwo")
}
