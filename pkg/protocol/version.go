package protocol

// Version tags a protocol revision. It is passed explicitly wherever
// revision-dependent shapes are produced or checked; shape inference is
// reserved for the few places no tag can exist (see Action).
type Version string

const (
	// Version01 is the legacy revision: bare action objects, tabItems,
	// entryPointChild/contentChild, and no op field on data-model updates.
	Version01 Version = "0.1"

	// Version02 is the current revision: event-wrapped actions, tabs,
	// trigger/content, explicit data-model ops, and computed values.
	Version02 Version = "0.2"
)

// CurrentVersion is the revision assumed when a Version is left unset.
const CurrentVersion = Version02

// Normalize resolves the zero value to CurrentVersion.
func (v Version) Normalize() Version {
	if v == "" {
		return CurrentVersion
	}
	return v
}

// Known reports whether v names a supported revision.
func (v Version) Known() bool {
	switch v {
	case Version01, Version02:
		return true
	}
	return false
}
