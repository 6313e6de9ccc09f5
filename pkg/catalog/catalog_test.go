package catalog

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rendis/uiwire/pkg/protocol"
)

// --- registration ---

func TestCatalog_RegisterAndLookup(t *testing.T) {
	c := New()
	require.NoError(t, c.Register(Definition{Kind: "Gauge", Required: []string{"level"}}))

	assert.True(t, c.Has("Gauge"))
	assert.Equal(t, 1, c.Count())

	fields, ok := c.RequiredFields("Gauge", protocol.Version02)
	require.True(t, ok)
	assert.Equal(t, []string{"level"}, fields)
}

func TestCatalog_RegisterDuplicate(t *testing.T) {
	c := New()
	require.NoError(t, c.Register(Definition{Kind: "Gauge"}))

	err := c.Register(Definition{Kind: "Gauge"})
	require.Error(t, err)

	werr, ok := err.(*protocol.WireError)
	require.True(t, ok)
	assert.Equal(t, protocol.ErrCodeConflict, werr.Code)
}

func TestCatalog_RegisterEmptyKind(t *testing.T) {
	c := New()
	assert.Error(t, c.Register(Definition{}))
}

func TestCatalog_UnknownKind(t *testing.T) {
	c := NewStandard()
	_, ok := c.RequiredFields("Carousel", protocol.Version02)
	assert.False(t, ok)
	assert.False(t, c.Has("Carousel"))

	_, ok = c.Definition("Carousel")
	assert.False(t, ok)
}

func TestCatalog_KindsSorted(t *testing.T) {
	c := New()
	for _, k := range []string{"Zeta", "Alpha", "Mid"} {
		require.NoError(t, c.Register(Definition{Kind: k}))
	}
	assert.Equal(t, []string{"Alpha", "Mid", "Zeta"}, c.Kinds())
}

// --- standard table ---

func TestStandard_SharedSingleton(t *testing.T) {
	assert.Same(t, Standard(), Standard())
}

func TestStandard_CoversEveryStandardKind(t *testing.T) {
	c := Standard()
	kinds := []string{
		protocol.KindText, protocol.KindImage, protocol.KindIcon,
		protocol.KindVideo, protocol.KindAudioPlayer, protocol.KindRow,
		protocol.KindColumn, protocol.KindList, protocol.KindCard,
		protocol.KindTabs, protocol.KindDivider, protocol.KindModal,
		protocol.KindButton, protocol.KindCheckBox, protocol.KindTextField,
		protocol.KindDateTimeInput, protocol.KindChoicePicker, protocol.KindSlider,
	}
	for _, k := range kinds {
		assert.True(t, c.Has(k), "missing standard kind %s", k)
	}
	assert.Equal(t, len(kinds), c.Count())
	assert.True(t, sort.StringsAreSorted(c.Kinds()))
}

func TestStandard_RequiredFieldTable(t *testing.T) {
	c := Standard()

	cases := map[string][]string{
		protocol.KindText:    {"text"},
		protocol.KindDivider: nil,
		protocol.KindButton:  {"child", "action"},
		protocol.KindSlider:  {"value", "min", "max"},
	}
	for kind, want := range cases {
		got, ok := c.RequiredFields(kind, protocol.Version02)
		require.True(t, ok, kind)
		assert.Equal(t, want, got, kind)
	}
}

func TestStandard_LegacyFieldNames(t *testing.T) {
	c := Standard()

	fields, _ := c.RequiredFields(protocol.KindTabs, protocol.Version01)
	assert.Equal(t, []string{"tabItems"}, fields)
	fields, _ = c.RequiredFields(protocol.KindTabs, protocol.Version02)
	assert.Equal(t, []string{"tabs"}, fields)

	fields, _ = c.RequiredFields(protocol.KindModal, protocol.Version01)
	assert.Equal(t, []string{"entryPointChild", "contentChild"}, fields)
	fields, _ = c.RequiredFields(protocol.KindModal, protocol.Version02)
	assert.Equal(t, []string{"trigger", "content"}, fields)
}

func TestStandard_ZeroVersionResolvesToCurrent(t *testing.T) {
	fields, _ := Standard().RequiredFields(protocol.KindTabs, "")
	assert.Equal(t, []string{"tabs"}, fields)
}

func TestDefinition_RequiredForWithoutLegacy(t *testing.T) {
	d := Definition{Kind: "Gauge", Required: []string{"level"}}
	assert.Equal(t, []string{"level"}, d.RequiredFor(protocol.Version01))
	assert.Equal(t, []string{"level"}, d.RequiredFor(protocol.Version02))
}

func TestNewStandard_CallerOwned(t *testing.T) {
	c := NewStandard()
	require.NoError(t, c.Register(Definition{Kind: "Gauge"}))

	assert.True(t, c.Has("Gauge"))
	assert.False(t, Standard().Has("Gauge"), "the shared catalog must stay pristine")
}

// --- concurrency ---

func TestCatalog_ConcurrentAccess(t *testing.T) {
	c := NewStandard()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.RequiredFields(protocol.KindSlider, protocol.Version02)
				c.Has(protocol.KindText)
				c.Kinds()
			}
		}()
	}
	wg.Wait()
}
