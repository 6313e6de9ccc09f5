package protocol

import "encoding/json"

// Standard component kinds. The set is closed for the standard catalog;
// custom kinds register through pkg/catalog.
const (
	KindText          = "Text"
	KindImage         = "Image"
	KindIcon          = "Icon"
	KindVideo         = "Video"
	KindAudioPlayer   = "AudioPlayer"
	KindRow           = "Row"
	KindColumn        = "Column"
	KindList          = "List"
	KindCard          = "Card"
	KindTabs          = "Tabs"
	KindDivider       = "Divider"
	KindModal         = "Modal"
	KindButton        = "Button"
	KindCheckBox      = "CheckBox"
	KindTextField     = "TextField"
	KindDateTimeInput = "DateTimeInput"
	KindChoicePicker  = "ChoicePicker"
	KindSlider        = "Slider"
)

// RootComponentID is the id a batch's root component carries by
// convention.
const RootComponentID = "root"

// Component is one entry in an updateComponents batch: a flat record
// with identity, kind, and an open set of kind-specific fields.
// Container fields hold component ids, not nested components.
type Component struct {
	ID    string
	Kind  string
	Props map[string]any
}

// MarshalJSON flattens Props alongside id and component. The id and
// component keys always win over colliding prop keys.
func (c Component) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(c.Props)+2)
	for k, v := range c.Props {
		m[k] = v
	}
	m["id"] = c.ID
	m["component"] = c.Kind
	return json.Marshal(m)
}

// UnmarshalJSON accepts any JSON object, splitting id and component out
// of the open record. Non-string id/component values are left to the
// validator and surface as empty fields here.
func (c *Component) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	if id, ok := m["id"].(string); ok {
		c.ID = id
	}
	if kind, ok := m["component"].(string); ok {
		c.Kind = kind
	}
	delete(m, "id")
	delete(m, "component")
	c.Props = m
	return nil
}

// Prop returns the named kind-specific field and whether it is present.
func (c Component) Prop(name string) (any, bool) {
	v, ok := c.Props[name]
	return v, ok
}
