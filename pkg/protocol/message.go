package protocol

// MessageKind names the four server→client message kinds. The kind is
// also the single top-level key of the wire envelope.
type MessageKind string

const (
	MessageCreateSurface    MessageKind = "createSurface"
	MessageUpdateComponents MessageKind = "updateComponents"
	MessageUpdateDataModel  MessageKind = "updateDataModel"
	MessageDeleteSurface    MessageKind = "deleteSurface"
)

// MessageKinds lists the recognized envelope keys in a fixed order.
var MessageKinds = []MessageKind{
	MessageCreateSurface,
	MessageUpdateComponents,
	MessageUpdateDataModel,
	MessageDeleteSurface,
}

// Data-model operations accepted by updateDataModel.
const (
	OpAdd     = "add"
	OpReplace = "replace"
	OpRemove  = "remove"
)

// Message is the single-key server→client envelope. Exactly one payload
// field is non-nil on a well-formed message.
type Message struct {
	CreateSurface    *CreateSurface    `json:"createSurface,omitempty"`
	UpdateComponents *UpdateComponents `json:"updateComponents,omitempty"`
	UpdateDataModel  *UpdateDataModel  `json:"updateDataModel,omitempty"`
	DeleteSurface    *DeleteSurface    `json:"deleteSurface,omitempty"`
}

// Kind returns the message kind, or "" when the envelope carries zero or
// more than one payload.
func (m Message) Kind() MessageKind {
	var kind MessageKind
	n := 0
	if m.CreateSurface != nil {
		kind, n = MessageCreateSurface, n+1
	}
	if m.UpdateComponents != nil {
		kind, n = MessageUpdateComponents, n+1
	}
	if m.UpdateDataModel != nil {
		kind, n = MessageUpdateDataModel, n+1
	}
	if m.DeleteSurface != nil {
		kind, n = MessageDeleteSurface, n+1
	}
	if n != 1 {
		return ""
	}
	return kind
}

// SurfaceID returns the surface the message addresses, or "" for an
// empty or multi-payload envelope.
func (m Message) SurfaceID() string {
	switch m.Kind() {
	case MessageCreateSurface:
		return m.CreateSurface.SurfaceID
	case MessageUpdateComponents:
		return m.UpdateComponents.SurfaceID
	case MessageUpdateDataModel:
		return m.UpdateDataModel.SurfaceID
	case MessageDeleteSurface:
		return m.DeleteSurface.SurfaceID
	}
	return ""
}

// CreateSurface opens a named surface bound to a component catalog.
type CreateSurface struct {
	SurfaceID     string         `json:"surfaceId"`
	CatalogID     string         `json:"catalogId"`
	Theme         map[string]any `json:"theme,omitempty"`
	SendDataModel bool           `json:"sendDataModel,omitempty"`
}

// UpdateComponents replaces or extends a surface's component set.
type UpdateComponents struct {
	SurfaceID  string      `json:"surfaceId"`
	Components []Component `json:"components"`
}

// UpdateDataModel edits a surface's bound data model. Op is one of
// OpAdd, OpReplace, OpRemove; an absent Op means replace. Path addresses
// the target node in slash form; an empty path addresses the model root.
type UpdateDataModel struct {
	SurfaceID string `json:"surfaceId"`
	Path      string `json:"path,omitempty"`
	Op        string `json:"op,omitempty"`
	Value     any    `json:"value,omitempty"`
}

// DeleteSurface tears a surface down.
type DeleteSurface struct {
	SurfaceID string `json:"surfaceId"`
}

// Event names the operation an interactive component triggers, plus an
// optional context map of dynamic values.
type Event struct {
	Name    string         `json:"name"`
	Context map[string]any `json:"context,omitempty"`
}

// Action attaches an event to an interactive component. Revision 0.2
// wraps the event (`{"event": {...}}`); revision 0.1 inlines the name
// and context. Exactly one of the two forms is populated; the wrapper
// key is what distinguishes them on the wire.
type Action struct {
	Event   *Event         `json:"event,omitempty"`
	Name    string         `json:"name,omitempty"`
	Context map[string]any `json:"context,omitempty"`
}

// ClientEvent is the client→server envelope reporting a user
// interaction on a surface.
type ClientEvent struct {
	Event SurfaceEvent `json:"event"`
}

// SurfaceEvent carries the interaction payload inside a ClientEvent.
// Timestamp, when set, is an RFC 3339 date-time.
type SurfaceEvent struct {
	SurfaceID   string         `json:"surfaceId"`
	Name        string         `json:"name"`
	ComponentID string         `json:"componentId,omitempty"`
	Context     map[string]any `json:"context,omitempty"`
	Timestamp   string         `json:"timestamp,omitempty"`
}
