package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rendis/uiwire/pkg/protocol"
)

func create(surfaceID string) protocol.Message {
	return protocol.Message{CreateSurface: &protocol.CreateSurface{
		SurfaceID: surfaceID, CatalogID: "std",
	}}
}

func update(surfaceID string) protocol.Message {
	return protocol.Message{UpdateComponents: &protocol.UpdateComponents{
		SurfaceID: surfaceID, Components: []protocol.Component{},
	}}
}

func dataModel(surfaceID string) protocol.Message {
	return protocol.Message{UpdateDataModel: &protocol.UpdateDataModel{
		SurfaceID: surfaceID, Path: "/x", Value: 1,
	}}
}

func del(surfaceID string) protocol.Message {
	return protocol.Message{DeleteSurface: &protocol.DeleteSurface{SurfaceID: surfaceID}}
}

// --- Well-formed lifecycles ---

func TestTracker_CleanLifecycle(t *testing.T) {
	tr := NewTracker()

	for _, msg := range []protocol.Message{
		create("s1"), update("s1"), dataModel("s1"), del("s1"),
	} {
		assert.Empty(t, tr.Observe(msg))
	}
	assert.Empty(t, tr.Live())
}

func TestTracker_RecreateAfterDelete(t *testing.T) {
	tr := NewTracker()

	tr.Observe(create("s1"))
	tr.Observe(del("s1"))
	assert.Empty(t, tr.Observe(create("s1")))
	assert.Equal(t, []string{"s1"}, tr.Live())
}

func TestTracker_IndependentSurfaces(t *testing.T) {
	tr := NewTracker()

	assert.Empty(t, tr.Observe(create("a")))
	assert.Empty(t, tr.Observe(create("b")))
	assert.Empty(t, tr.Observe(update("a")))
	assert.Empty(t, tr.Observe(del("b")))
	assert.Equal(t, []string{"a"}, tr.Live())
}

// --- Lifecycle findings ---

func TestTracker_CreateOnLiveSurface(t *testing.T) {
	tr := NewTracker()

	tr.Observe(create("s1"))
	issues := tr.Observe(create("s1"))

	require.Len(t, issues, 1)
	assert.Equal(t, CodeSurfaceAlreadyExists, issues[0].Code)
	assert.Equal(t, "messages[1].createSurface.surfaceId", issues[0].Path)
	assert.Equal(t, protocol.SeverityWarning, issues[0].Severity)

	// The surface stays live; re-creation resets rather than kills it.
	assert.Equal(t, []string{"s1"}, tr.Live())
}

func TestTracker_UpdateUnknownSurface(t *testing.T) {
	tr := NewTracker()

	issues := tr.Observe(update("ghost"))

	require.Len(t, issues, 1)
	assert.Equal(t, CodeUnknownSurface, issues[0].Code)
	assert.Equal(t, "messages[0].updateComponents.surfaceId", issues[0].Path)
}

func TestTracker_DeleteUnknownSurface(t *testing.T) {
	tr := NewTracker()

	issues := tr.Observe(del("ghost"))

	require.Len(t, issues, 1)
	assert.Equal(t, CodeUnknownSurface, issues[0].Code)
	assert.Equal(t, "messages[0].deleteSurface.surfaceId", issues[0].Path)
}

func TestTracker_DeleteThenUpdate(t *testing.T) {
	tr := NewTracker()

	tr.Observe(create("s1"))
	tr.Observe(del("s1"))
	issues := tr.Observe(dataModel("s1"))

	require.Len(t, issues, 1)
	assert.Equal(t, CodeUnknownSurface, issues[0].Code)
	assert.Equal(t, "messages[2].updateDataModel.surfaceId", issues[0].Path)
}

// --- Stream position bookkeeping ---

func TestTracker_MalformedMessagesConsumeAPosition(t *testing.T) {
	tr := NewTracker()

	assert.Empty(t, tr.Observe(protocol.Message{}), "empty envelope is the validator's problem")
	assert.Empty(t, tr.Observe(create("s1")))
	issues := tr.Observe(create("s1"))

	require.Len(t, issues, 1)
	assert.Equal(t, "messages[2].createSurface.surfaceId", issues[0].Path,
		"index must count skipped messages")
}

func TestTracker_EmptySurfaceIDSkipped(t *testing.T) {
	tr := NewTracker()

	assert.Empty(t, tr.Observe(create("")))
	assert.Empty(t, tr.Live())
}

func TestTracker_Reset(t *testing.T) {
	tr := NewTracker()

	tr.Observe(create("s1"))
	tr.Reset()

	assert.Empty(t, tr.Live())
	issues := tr.Observe(update("s1"))
	require.Len(t, issues, 1)
	assert.Equal(t, "messages[0].updateComponents.surfaceId", issues[0].Path)
}

// --- Batch convenience ---

func TestTracker_ObserveAll(t *testing.T) {
	tr := NewTracker()

	result := tr.ObserveAll([]protocol.Message{
		create("s1"),
		update("s1"),
		update("nope"),
		del("s1"),
		del("s1"),
	})

	assert.True(t, result.Valid(), "lifecycle findings are warnings, never errors")
	require.Len(t, result.Warnings, 2)
	assert.Equal(t, "messages[2].updateComponents.surfaceId", result.Warnings[0].Path)
	assert.Equal(t, CodeUnknownSurface, result.Warnings[0].Code)
	assert.Equal(t, "messages[4].deleteSurface.surfaceId", result.Warnings[1].Path)
}
