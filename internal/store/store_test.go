package store

import (
	"testing"

	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_DispatchInstallsNewState(t *testing.T) {
	st := New(seedState())

	st.Dispatch(SelectTask{ID: "b"})

	assert.Equal(t, "b", st.State().SelectedTaskID)
}

func TestStore_NilActionIsNoop(t *testing.T) {
	st := New(seedState())
	before := st.State()

	st.Dispatch(nil)

	assert.Equal(t, before, st.State())
}

func TestStore_SnapshotsAreStable(t *testing.T) {
	st := New(seedState())
	before := st.State()

	st.Dispatch(UpdateTask{ID: "a", Patch: domain.TaskPatch{Name: domain.Ptr("renamed")}})

	// A snapshot taken before the dispatch still sees the old value.
	require.Equal(t, "a", before.Tasks[0].Name)
	assert.Equal(t, "renamed", st.State().Tasks[0].Name)
}

func TestNewState_Defaults(t *testing.T) {
	s := NewState(nil)

	assert.Equal(t, domain.ViewDay, s.ViewMode)
	assert.Equal(t, 1.0, s.ZoomLevel)
	assert.False(t, s.IsMaximized)
	assert.False(t, s.IsResizing)
	assert.Nil(t, s.DraggedTask)
}
