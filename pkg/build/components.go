package build

import "github.com/rendis/uiwire/pkg/protocol"

// Package-level constructors produce current-revision components with
// caller-chosen ids. Field values are dynamic: pass a literal, a
// protocol.Bind(...) binding, or a protocol.Compute(...) expression.
// For revision-aware construction and id minting, use a Builder.

// TabItem is one tab of a Tabs component.
type TabItem struct {
	Title any    `json:"title"`
	Child string `json:"child"`
}

// ChoiceOption is one selectable entry of a ChoicePicker.
type ChoiceOption struct {
	Label any `json:"label"`
	Value any `json:"value"`
}

// Action builds a current-revision action: the named event fires when
// the owning component is activated.
func Action(name string, context map[string]any) protocol.Action {
	return protocol.Action{Event: &protocol.Event{Name: name, Context: context}}
}

func component(id, kind string, props map[string]any) protocol.Component {
	if props == nil {
		props = map[string]any{}
	}
	return protocol.Component{ID: id, Kind: kind, Props: props}
}

// Text displays a string.
func Text(id string, text any) protocol.Component {
	return component(id, protocol.KindText, map[string]any{"text": text})
}

// Image displays the image at url.
func Image(id string, url any) protocol.Component {
	return component(id, protocol.KindImage, map[string]any{"url": url})
}

// Video embeds a video player for url.
func Video(id string, url any) protocol.Component {
	return component(id, protocol.KindVideo, map[string]any{"url": url})
}

// AudioPlayer embeds an audio player for url.
func AudioPlayer(id string, url any) protocol.Component {
	return component(id, protocol.KindAudioPlayer, map[string]any{"url": url})
}

// Icon displays a named glyph.
func Icon(id string, name any) protocol.Component {
	return component(id, protocol.KindIcon, map[string]any{"name": name})
}

// Row lays children out horizontally. Children are component ids.
func Row(id string, children ...string) protocol.Component {
	return component(id, protocol.KindRow, map[string]any{"children": childList(children)})
}

// Column lays children out vertically.
func Column(id string, children ...string) protocol.Component {
	return component(id, protocol.KindColumn, map[string]any{"children": childList(children)})
}

// List renders children as a scrollable list.
func List(id string, children ...string) protocol.Component {
	return component(id, protocol.KindList, map[string]any{"children": childList(children)})
}

// Card frames a single child.
func Card(id, child string) protocol.Component {
	return component(id, protocol.KindCard, map[string]any{"child": child})
}

// Divider is a visual separator with no required fields.
func Divider(id string) protocol.Component {
	return component(id, protocol.KindDivider, nil)
}

// Tabs shows one tab's child at a time.
func Tabs(id string, tabs ...TabItem) protocol.Component {
	return component(id, protocol.KindTabs, map[string]any{"tabs": tabList(tabs)})
}

// Modal opens content when trigger is activated. Both are component ids.
func Modal(id, trigger, content string) protocol.Component {
	return component(id, protocol.KindModal, map[string]any{
		"trigger": trigger,
		"content": content,
	})
}

// Button renders child and fires action when pressed.
func Button(id, child string, action protocol.Action) protocol.Component {
	return component(id, protocol.KindButton, map[string]any{
		"child":  child,
		"action": action,
	})
}

// CheckBox is a labelled boolean input.
func CheckBox(id string, label, value any) protocol.Component {
	return component(id, protocol.KindCheckBox, map[string]any{
		"label": label,
		"value": value,
	})
}

// TextField is a labelled free-text input.
func TextField(id string, label any) protocol.Component {
	return component(id, protocol.KindTextField, map[string]any{"label": label})
}

// DateTimeInput edits a date-time value.
func DateTimeInput(id string, value any) protocol.Component {
	return component(id, protocol.KindDateTimeInput, map[string]any{"value": value})
}

// ChoicePicker selects one or more of options into value. Pass a
// binding as value to keep the selection in the data model.
func ChoicePicker(id string, value any, options ...ChoiceOption) protocol.Component {
	return component(id, protocol.KindChoicePicker, map[string]any{
		"options": optionList(options),
		"value":   value,
	})
}

// Slider edits a bounded numeric value.
func Slider(id string, value, min, max any) protocol.Component {
	return component(id, protocol.KindSlider, map[string]any{
		"value": value,
		"min":   min,
		"max":   max,
	})
}

// WithProp returns a copy of c with one extra kind-specific field set.
// The component record is open, so optional fields ride alongside the
// required ones the constructors cover.
func WithProp(c protocol.Component, key string, value any) protocol.Component {
	props := make(map[string]any, len(c.Props)+1)
	for k, v := range c.Props {
		props[k] = v
	}
	props[key] = value
	c.Props = props
	return c
}

// Empty variadics become empty JSON arrays, never null.

func childList(children []string) []string {
	if children == nil {
		return []string{}
	}
	return children
}

func tabList(tabs []TabItem) []TabItem {
	if tabs == nil {
		return []TabItem{}
	}
	return tabs
}

func optionList(options []ChoiceOption) []ChoiceOption {
	if options == nil {
		return []ChoiceOption{}
	}
	return options
}
