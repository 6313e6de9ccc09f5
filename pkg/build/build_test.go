package build

import (
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rendis/uiwire/pkg/protocol"
	"github.com/rendis/uiwire/pkg/validate"
)

// --- id generation ---

func TestSequence_KindScopedAndResettable(t *testing.T) {
	s := NewSequence()
	assert.Equal(t, "text-1", s.NextID("Text"))
	assert.Equal(t, "text-2", s.NextID("Text"))
	assert.Equal(t, "button-1", s.NextID("Button"))
	assert.Equal(t, "component-1", s.NextID(""))

	s.Reset()
	assert.Equal(t, "text-1", s.NextID("Text"))
}

func TestSequence_IndependentInstances(t *testing.T) {
	// No shared global counter: two sequences never see each other.
	a, b := NewSequence(), NewSequence()
	assert.Equal(t, "text-1", a.NextID("Text"))
	assert.Equal(t, "text-1", b.NextID("Text"))
}

func TestSequence_ConcurrentUnique(t *testing.T) {
	s := NewSequence()
	var mu sync.Mutex
	seen := make(map[string]bool)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				id := s.NextID("Text")
				mu.Lock()
				assert.False(t, seen[id], "duplicate id %s", id)
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Len(t, seen, 400)
}

func TestUUID_KindPrefixed(t *testing.T) {
	g := UUID{}
	id := g.NextID("Card")
	assert.True(t, strings.HasPrefix(id, "card-"))
	assert.NotEqual(t, id, g.NextID("Card"))
	assert.NotEmpty(t, g.NextID(""))
}

// --- constructors ---

func TestConstructors_WireShape(t *testing.T) {
	c := Slider("s", 3, 0, 10)
	assert.Equal(t, protocol.KindSlider, c.Kind)

	b, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"s","component":"Slider","value":3,"min":0,"max":10}`, string(b))
}

func TestConstructors_EmptyChildrenIsArray(t *testing.T) {
	b, err := json.Marshal(Row("r"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"r","component":"Row","children":[]}`, string(b))
}

func TestConstructors_ActionShape(t *testing.T) {
	b, err := json.Marshal(Button("b", "label", Action("submit", map[string]any{"form": protocol.Bind("/form")})))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "b", "component": "Button", "child": "label",
		"action": {"event": {"name": "submit", "context": {"form": {"path": "/form"}}}}
	}`, string(b))
}

func TestConstructors_BindingsPassThrough(t *testing.T) {
	c := Text("t", protocol.Bind("/title"))
	v, ok := c.Prop("text")
	require.True(t, ok)
	assert.True(t, protocol.IsBinding(v))
}

func TestWithProp_CopiesProps(t *testing.T) {
	base := Text("t", "hi")
	styled := WithProp(base, "weight", "bold")

	_, ok := styled.Prop("weight")
	assert.True(t, ok)
	_, ok = base.Prop("weight")
	assert.False(t, ok, "the original component must stay untouched")
}

// --- builder ---

func TestBuilder_MintsIDsWhenEmpty(t *testing.T) {
	b := NewBuilder(protocol.Version02, NewSequence())
	assert.Equal(t, "text-1", b.Text("", "hi").ID)
	assert.Equal(t, "given", b.Text("given", "hi").ID)
	assert.Equal(t, "text-2", b.Text("", "hi").ID)
}

func TestBuilder_NilGeneratorDefaultsToSequence(t *testing.T) {
	b := NewBuilder("", nil)
	assert.Equal(t, protocol.CurrentVersion, b.Version())
	assert.Equal(t, "card-1", b.Card("", "x").ID)
}

func TestBuilder_RevisionShapes(t *testing.T) {
	modern := NewBuilder(protocol.Version02, nil)
	legacy := NewBuilder(protocol.Version01, nil)

	_, ok := modern.Tabs("t", TabItem{Title: "One", Child: "c"}).Prop("tabs")
	assert.True(t, ok)
	_, ok = legacy.Tabs("t", TabItem{Title: "One", Child: "c"}).Prop("tabItems")
	assert.True(t, ok)

	_, ok = modern.Modal("m", "open", "body").Prop("trigger")
	assert.True(t, ok)
	_, ok = legacy.Modal("m", "open", "body").Prop("entryPointChild")
	assert.True(t, ok)

	require.NotNil(t, modern.Action("go", nil).Event)
	assert.Equal(t, "go", modern.Action("go", nil).Event.Name)
	assert.Nil(t, legacy.Action("go", nil).Event)
	assert.Equal(t, "go", legacy.Action("go", nil).Name)
}

func TestBuilder_LegacyDataModelDropsOp(t *testing.T) {
	legacy := NewBuilder(protocol.Version01, nil)
	msg := legacy.UpdateDataModel("s1", "add", "/x", 1)
	assert.Empty(t, msg.UpdateDataModel.Op)
}

// --- message constructors ---

func TestUpdateComponents_EmptyIsArrayOnWire(t *testing.T) {
	b, err := json.Marshal(UpdateComponents("s1"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"updateComponents":{"surfaceId":"s1","components":[]}}`, string(b))
}

func TestMessageConstructors_Envelope(t *testing.T) {
	assert.Equal(t, protocol.MessageCreateSurface, CreateSurface("s", "c").Kind())
	assert.Equal(t, protocol.MessageUpdateComponents, UpdateComponents("s").Kind())
	assert.Equal(t, protocol.MessageUpdateDataModel, UpdateDataModel("s", "", "/x", 1).Kind())
	assert.Equal(t, protocol.MessageDeleteSurface, DeleteSurface("s").Kind())
	assert.Equal(t, "s", DeleteSurface("s").SurfaceID())
}

// --- builder output always validates ---

// fullSurface exercises every standard kind through one builder.
func fullSurface(b *Builder) []protocol.Message {
	toggle := b.CheckBox("", "Notifications", protocol.Bind("/settings/notify"))
	name := b.TextField("", "Name")
	when := b.DateTimeInput("", protocol.Bind("/when"))
	level := b.Slider("", protocol.Bind("/level"), 0, 100)
	pick := b.ChoicePicker("", protocol.Bind("/choice"),
		ChoiceOption{Label: "Low", Value: "low"},
		ChoiceOption{Label: "High", Value: "high"},
	)

	// Computed values exist only in 0.2; the legacy rendition binds.
	headingText := any(protocol.Compute("", `"Hello " + data.name`))
	if b.Version() == protocol.Version01 {
		headingText = protocol.Bind("/greeting")
	}
	heading := b.Text("", headingText)
	logo := b.Image("", "https://example.test/logo.png")
	clip := b.Video("", "https://example.test/intro.mp4")
	sound := b.AudioPlayer("", "https://example.test/ding.mp3")
	glyph := b.Icon("", "gear")
	save := b.Text("save-label", "Save")
	submit := b.Button("", save.ID, b.Action("save", map[string]any{"name": protocol.Bind("/name")}))
	sep := b.Divider("")
	form := b.Column("", name.ID, when.ID, level.ID, pick.ID, toggle.ID, sep.ID, submit.ID)
	media := b.Row("", logo.ID, clip.ID, sound.ID, glyph.ID)
	gallery := b.List("", media.ID)
	framed := b.Card("", gallery.ID)
	tabs := b.Tabs("", TabItem{Title: "Form", Child: form.ID}, TabItem{Title: "Media", Child: framed.ID})
	hint := b.Text("", "More options")
	more := b.Modal("", hint.ID, heading.ID)
	root := b.Column("root", tabs.ID, more.ID)

	return []protocol.Message{
		b.CreateSurface("settings", "standard"),
		b.UpdateComponents("settings",
			root, tabs, more, hint, heading, framed, gallery, media, form,
			logo, clip, sound, glyph, save, submit, sep,
			name, when, level, pick, toggle,
		),
		b.UpdateDataModel("settings", protocol.OpAdd, "/settings/notify", true),
		b.DeleteSurface("settings"),
	}
}

func TestBuilder_OutputAlwaysValid(t *testing.T) {
	for _, version := range []protocol.Version{protocol.Version01, protocol.Version02} {
		b := NewBuilder(version, NewSequence())

		var msgs []any
		for _, m := range fullSurface(b) {
			msgs = append(msgs, m)
		}

		for _, strict := range []bool{false, true} {
			opts := validate.Options{Strict: strict, Version: version}
			result := validate.ValidateMessages(msgs, opts)
			assert.True(t, result.Valid(), "revision %s strict=%v: %+v", version, strict, result.Errors)
			assert.Empty(t, result.Warnings, "revision %s strict=%v: %+v", version, strict, result.Warnings)
		}
	}
}

func TestBuilder_OutputConformsToSchema(t *testing.T) {
	for _, version := range []protocol.Version{protocol.Version01, protocol.Version02} {
		sv, err := validate.NewSchemaValidator(version)
		require.NoError(t, err)

		b := NewBuilder(version, NewSequence())
		var msgs []any
		for _, m := range fullSurface(b) {
			msgs = append(msgs, m)
		}

		r := sv.ValidateServerMessages(msgs)
		assert.True(t, r.Valid, "revision %s: %+v", version, r.Errors)
	}
}
