package validate

import (
	"github.com/rendis/uiwire/pkg/catalog"
	"github.com/rendis/uiwire/pkg/protocol"
)

// Options configures a validation pass. Options are per-call state; the
// package keeps no globals. The zero value validates against the current
// protocol revision and the standard catalog in non-strict mode.
type Options struct {
	// Strict enables the catalog-convention warnings: unknown component
	// types and a batch with no "root" component. Data-quality warnings
	// (bad theme color, unnecessary value) are emitted in every mode.
	Strict bool

	// AllowedComponents suppresses the unknown-type warning for the
	// listed kinds. Only consulted in strict mode.
	AllowedComponents []string

	// Version selects the protocol revision to validate against. The
	// zero value resolves to protocol.CurrentVersion.
	Version protocol.Version

	// Catalog supplies the component kind definitions. Nil means the
	// shared standard catalog.
	Catalog *catalog.Catalog
}

// normalized resolves defaulted fields so the checking code never
// branches on zero values.
func (o Options) normalized() Options {
	o.Version = o.Version.Normalize()
	if o.Catalog == nil {
		o.Catalog = catalog.Standard()
	}
	return o
}

// allowed reports whether kind is on the caller's allow-list.
func (o Options) allowed(kind string) bool {
	for _, k := range o.AllowedComponents {
		if k == kind {
			return true
		}
	}
	return false
}
