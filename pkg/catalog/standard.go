package catalog

import "github.com/rendis/uiwire/pkg/protocol"

// standardDefinitions is the authoritative required-field table for the
// standard component kinds. Tabs and Modal carry legacy 0.1 field names.
var standardDefinitions = []Definition{
	{Kind: protocol.KindText, Required: []string{"text"}},
	{Kind: protocol.KindImage, Required: []string{"url"}},
	{Kind: protocol.KindVideo, Required: []string{"url"}},
	{Kind: protocol.KindAudioPlayer, Required: []string{"url"}},
	{Kind: protocol.KindIcon, Required: []string{"name"}},
	{Kind: protocol.KindRow, Required: []string{"children"}},
	{Kind: protocol.KindColumn, Required: []string{"children"}},
	{Kind: protocol.KindList, Required: []string{"children"}},
	{Kind: protocol.KindCard, Required: []string{"child"}},
	{Kind: protocol.KindTabs, Required: []string{"tabs"}, Legacy: []string{"tabItems"}},
	{Kind: protocol.KindDivider, Required: nil},
	{Kind: protocol.KindModal, Required: []string{"trigger", "content"}, Legacy: []string{"entryPointChild", "contentChild"}},
	{Kind: protocol.KindButton, Required: []string{"child", "action"}},
	{Kind: protocol.KindCheckBox, Required: []string{"label", "value"}},
	{Kind: protocol.KindTextField, Required: []string{"label"}},
	{Kind: protocol.KindDateTimeInput, Required: []string{"value"}},
	{Kind: protocol.KindChoicePicker, Required: []string{"options", "value"}},
	{Kind: protocol.KindSlider, Required: []string{"value", "min", "max"}},
}
