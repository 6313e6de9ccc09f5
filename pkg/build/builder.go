package build

import "github.com/rendis/uiwire/pkg/protocol"

// Builder assembles components and messages for one protocol revision.
// Ids left empty are minted by the injected IDGenerator; revision-
// dependent shapes (tabs vs tabItems, wrapped vs bare actions) come out
// correct for the builder's revision, so builder output always
// validates clean against it.
type Builder struct {
	version protocol.Version
	ids     IDGenerator
}

// NewBuilder creates a Builder for version. A nil gen defaults to a
// fresh Sequence owned by this builder.
func NewBuilder(version protocol.Version, gen IDGenerator) *Builder {
	if gen == nil {
		gen = NewSequence()
	}
	return &Builder{version: version.Normalize(), ids: gen}
}

// Version reports the protocol revision the builder emits.
func (b *Builder) Version() protocol.Version {
	return b.version
}

func (b *Builder) id(id, kind string) string {
	if id != "" {
		return id
	}
	return b.ids.NextID(kind)
}

func (b *Builder) legacy() bool {
	return b.version == protocol.Version01
}

// Action builds the revision-correct action shape for name.
func (b *Builder) Action(name string, context map[string]any) protocol.Action {
	if b.legacy() {
		return protocol.Action{Name: name, Context: context}
	}
	return Action(name, context)
}

func (b *Builder) Text(id string, text any) protocol.Component {
	return Text(b.id(id, protocol.KindText), text)
}

func (b *Builder) Image(id string, url any) protocol.Component {
	return Image(b.id(id, protocol.KindImage), url)
}

func (b *Builder) Video(id string, url any) protocol.Component {
	return Video(b.id(id, protocol.KindVideo), url)
}

func (b *Builder) AudioPlayer(id string, url any) protocol.Component {
	return AudioPlayer(b.id(id, protocol.KindAudioPlayer), url)
}

func (b *Builder) Icon(id string, name any) protocol.Component {
	return Icon(b.id(id, protocol.KindIcon), name)
}

func (b *Builder) Row(id string, children ...string) protocol.Component {
	return Row(b.id(id, protocol.KindRow), children...)
}

func (b *Builder) Column(id string, children ...string) protocol.Component {
	return Column(b.id(id, protocol.KindColumn), children...)
}

func (b *Builder) List(id string, children ...string) protocol.Component {
	return List(b.id(id, protocol.KindList), children...)
}

func (b *Builder) Card(id, child string) protocol.Component {
	return Card(b.id(id, protocol.KindCard), child)
}

func (b *Builder) Divider(id string) protocol.Component {
	return Divider(b.id(id, protocol.KindDivider))
}

// Tabs emits the revision's field name: tabs on 0.2, tabItems on 0.1.
func (b *Builder) Tabs(id string, tabs ...TabItem) protocol.Component {
	field := "tabs"
	if b.legacy() {
		field = "tabItems"
	}
	return component(b.id(id, protocol.KindTabs), protocol.KindTabs,
		map[string]any{field: tabList(tabs)})
}

// Modal emits trigger/content on 0.2 and the legacy
// entryPointChild/contentChild pair on 0.1.
func (b *Builder) Modal(id, trigger, content string) protocol.Component {
	if b.legacy() {
		return component(b.id(id, protocol.KindModal), protocol.KindModal, map[string]any{
			"entryPointChild": trigger,
			"contentChild":    content,
		})
	}
	return Modal(b.id(id, protocol.KindModal), trigger, content)
}

func (b *Builder) Button(id, child string, action protocol.Action) protocol.Component {
	return Button(b.id(id, protocol.KindButton), child, action)
}

func (b *Builder) CheckBox(id string, label, value any) protocol.Component {
	return CheckBox(b.id(id, protocol.KindCheckBox), label, value)
}

func (b *Builder) TextField(id string, label any) protocol.Component {
	return TextField(b.id(id, protocol.KindTextField), label)
}

func (b *Builder) DateTimeInput(id string, value any) protocol.Component {
	return DateTimeInput(b.id(id, protocol.KindDateTimeInput), value)
}

func (b *Builder) ChoicePicker(id string, value any, options ...ChoiceOption) protocol.Component {
	return ChoicePicker(b.id(id, protocol.KindChoicePicker), value, options...)
}

func (b *Builder) Slider(id string, value, min, max any) protocol.Component {
	return Slider(b.id(id, protocol.KindSlider), value, min, max)
}

// CreateSurface opens a surface bound to catalogID.
func (b *Builder) CreateSurface(surfaceID, catalogID string) protocol.Message {
	return CreateSurface(surfaceID, catalogID)
}

// UpdateComponents wraps components for surfaceID.
func (b *Builder) UpdateComponents(surfaceID string, components ...protocol.Component) protocol.Message {
	return UpdateComponents(surfaceID, components...)
}

// UpdateDataModel edits the surface's data model. On 0.1 the op field
// does not exist on the wire and is dropped; value presence implies
// replace there.
func (b *Builder) UpdateDataModel(surfaceID, op, path string, value any) protocol.Message {
	if b.legacy() {
		op = ""
	}
	return UpdateDataModel(surfaceID, op, path, value)
}

// DeleteSurface tears surfaceID down.
func (b *Builder) DeleteSurface(surfaceID string) protocol.Message {
	return DeleteSurface(surfaceID)
}
