package tree

import (
	"testing"

	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReorder_FrontToBack(t *testing.T) {
	forest := testForest() // [alpha beta gamma]

	out := Reorder(forest, 0, 2)

	assert.Equal(t, []string{"beta", "gamma", "alpha"}, ids(out))
}

func TestReorder_BackToFront(t *testing.T) {
	forest := testForest()

	out := Reorder(forest, 2, 0)

	assert.Equal(t, []string{"gamma", "alpha", "beta"}, ids(out))
}

func TestReorder_OutOfRangeIsIdentity(t *testing.T) {
	forest := testForest()

	assert.Equal(t, forest, Reorder(forest, -1, 1))
	assert.Equal(t, forest, Reorder(forest, 0, 3))
	assert.Equal(t, forest, Reorder(forest, 1, 1))
}

func TestReparent_ToAnotherNode(t *testing.T) {
	forest := testForest()

	out := Reparent(forest, "gamma", "beta", 0)

	require.Nil(t, Find(out, "gamma").Children)
	moved := Find(out, "gamma")
	assert.Equal(t, "beta", moved.ParentID)
	require.Len(t, Find(out, "beta").Children, 1)
	assert.Equal(t, []string{"alpha", "beta"}, ids(out))
	assert.Equal(t, 6, Count(out))
}

func TestReparent_SubtreeMovesIntact(t *testing.T) {
	forest := testForest()

	out := Reparent(forest, "alpha-2", "gamma", 0)

	moved := Find(out, "alpha-2")
	require.NotNil(t, moved)
	assert.Equal(t, "gamma", moved.ParentID)
	assert.NotNil(t, Find(out, "alpha-2-1"), "descendants travel with the subtree")
	assert.Equal(t, 6, Count(out))
	assert.Equal(t, []string{"alpha-1"}, ids(Find(out, "alpha").Children))
}

func TestReparent_ToRootAtIndex(t *testing.T) {
	forest := testForest()

	out := Reparent(forest, "alpha-1", "", 1)

	assert.Equal(t, []string{"alpha", "alpha-1", "beta", "gamma"}, ids(out))
	assert.Equal(t, "", Find(out, "alpha-1").ParentID)
}

func TestReparent_RefusesOwnSubtree(t *testing.T) {
	forest := testForest()

	assert.Equal(t, forest, Reparent(forest, "alpha", "alpha-2-1", 0))
	assert.Equal(t, forest, Reparent(forest, "alpha", "alpha", 0))
}

func TestReparent_IdentityOnMiss(t *testing.T) {
	forest := testForest()

	assert.Equal(t, forest, Reparent(forest, "missing", "beta", 0))
	assert.Equal(t, forest, Reparent(forest, "beta", "missing", 0))
}

func TestFlatten_HonorsExpansion(t *testing.T) {
	forest := testForest() // alpha expanded, alpha-2 collapsed

	rows := Flatten(forest)

	var got []string
	var depths []int
	for _, r := range rows {
		got = append(got, r.Task.ID)
		depths = append(depths, r.Depth)
	}
	assert.Equal(t, []string{"alpha", "alpha-1", "alpha-2", "beta", "gamma"}, got)
	assert.Equal(t, []int{0, 1, 1, 0, 0}, depths)
}

func TestFlatten_CollapsedRootHidesChildren(t *testing.T) {
	forest := testForest()
	forest = Update(forest, "alpha", domain.TaskPatch{IsExpanded: domain.Ptr(false)})

	rows := Flatten(forest)

	assert.Len(t, rows, 3)
}
