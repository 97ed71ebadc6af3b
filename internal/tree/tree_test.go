package tree

import (
	"testing"
	"time"

	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testForest builds a three-root forest with one nested branch:
//
//	alpha
//	├─ alpha-1
//	└─ alpha-2
//	   └─ alpha-2-1
//	beta
//	gamma
func testForest() []domain.Task {
	day := domain.Date(2025, time.March, 3)
	mk := func(id, parentID string) domain.Task {
		return domain.Task{
			ID: id, Name: id, ParentID: parentID,
			StartDate: day, EndDate: day.AddDate(0, 0, 2),
			Status: domain.StatusNotStarted, Priority: domain.PriorityMedium,
		}
	}
	alpha := mk("alpha", "")
	alpha.IsExpanded = true
	alpha2 := mk("alpha-2", "alpha")
	alpha2.Children = []domain.Task{mk("alpha-2-1", "alpha-2")}
	alpha.Children = []domain.Task{mk("alpha-1", "alpha"), alpha2}
	return []domain.Task{alpha, mk("beta", ""), mk("gamma", "")}
}

func ids(tasks []domain.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestFind_AtAnyDepth(t *testing.T) {
	forest := testForest()

	require.NotNil(t, Find(forest, "alpha"))
	require.NotNil(t, Find(forest, "alpha-2-1"))
	assert.Equal(t, "alpha-2", Find(forest, "alpha-2-1").ParentID)
	assert.Nil(t, Find(forest, "missing"))
}

func TestUpdate_DeepNode(t *testing.T) {
	forest := testForest()

	out := Update(forest, "alpha-2-1", domain.TaskPatch{Name: domain.Ptr("renamed")})

	assert.Equal(t, "renamed", Find(out, "alpha-2-1").Name)
	// Original forest untouched.
	assert.Equal(t, "alpha-2-1", Find(forest, "alpha-2-1").Name)
	// Untouched roots are shared, not copied.
	assert.Equal(t, Count(forest), Count(out))
}

func TestUpdate_IdentityOnMiss(t *testing.T) {
	forest := testForest()

	out := Update(forest, "missing", domain.TaskPatch{Name: domain.Ptr("x")})

	assert.Equal(t, forest, out)
}

func TestInsertAt_AboveAndBelowPreserveSiblings(t *testing.T) {
	forest := testForest()

	above := InsertAt(forest, domain.Task{ID: "new"}, domain.InsertAbove, "beta")
	require.Equal(t, []string{"alpha", "new", "beta", "gamma"}, ids(above))

	below := InsertAt(forest, domain.Task{ID: "new"}, domain.InsertBelow, "beta")
	require.Equal(t, []string{"alpha", "beta", "new", "gamma"}, ids(below))
}

func TestInsertAt_NestedSibling(t *testing.T) {
	forest := testForest()

	out := InsertAt(forest, domain.Task{ID: "new"}, domain.InsertAbove, "alpha-2")

	kids := Find(out, "alpha").Children
	require.Equal(t, []string{"alpha-1", "new", "alpha-2"}, ids(kids))
	assert.Equal(t, "alpha", Find(out, "new").ParentID)
}

func TestInsertAt_Subtask(t *testing.T) {
	forest := testForest()
	require.False(t, Find(forest, "beta").IsExpanded)

	out := InsertAt(forest, domain.Task{ID: "new"}, domain.InsertSubtask, "beta")

	target := Find(out, "beta")
	require.True(t, target.IsExpanded, "subtask insertion expands the target")
	require.Len(t, target.Children, 1)
	assert.Equal(t, "new", target.Children[0].ID)
	assert.Equal(t, "beta", target.Children[0].ParentID)
}

func TestInsertAt_SubtaskAppendsAsLastChild(t *testing.T) {
	forest := testForest()

	out := InsertAt(forest, domain.Task{ID: "new"}, domain.InsertSubtask, "alpha")

	kids := Find(out, "alpha").Children
	require.Equal(t, []string{"alpha-1", "alpha-2", "new"}, ids(kids))
}

func TestInsertAt_IdentityOnMiss(t *testing.T) {
	forest := testForest()

	out := InsertAt(forest, domain.Task{ID: "new"}, domain.InsertBelow, "missing")

	assert.Equal(t, forest, out)
}

func TestDeleteSubtree_RemovesWholeBranch(t *testing.T) {
	forest := testForest()
	require.Equal(t, 6, Count(forest))

	out := DeleteSubtree(forest, "alpha-2")

	// alpha-2 and its child go together.
	assert.Equal(t, 4, Count(out))
	assert.Nil(t, Find(out, "alpha-2"))
	assert.Nil(t, Find(out, "alpha-2-1"))
	assert.NotNil(t, Find(out, "alpha-1"))
}

func TestDeleteSubtree_Root(t *testing.T) {
	forest := testForest()

	out := DeleteSubtree(forest, "alpha")

	assert.Equal(t, []string{"beta", "gamma"}, ids(out))
	assert.Equal(t, 2, Count(out))
}

func TestDeleteSubtree_IdentityOnMiss(t *testing.T) {
	forest := testForest()

	out := DeleteSubtree(forest, "missing")

	assert.Equal(t, forest, out)
}

func TestOperations_DoNotMutateInput(t *testing.T) {
	forest := testForest()
	snapshot := make([]domain.Task, len(forest))
	for i, root := range forest {
		snapshot[i] = root.Clone()
	}

	Update(forest, "alpha-1", domain.TaskPatch{Name: domain.Ptr("x")})
	InsertAt(forest, domain.Task{ID: "n1"}, domain.InsertSubtask, "alpha-1")
	InsertAt(forest, domain.Task{ID: "n2"}, domain.InsertAbove, "alpha-2")
	DeleteSubtree(forest, "alpha-2")
	Reorder(forest, 0, 2)
	Reparent(forest, "gamma", "beta", 0)

	assert.Equal(t, snapshot, forest)
}
