package build

import "github.com/rendis/uiwire/pkg/protocol"

// Message constructors wrap payloads in the single-key envelope.

// CreateSurface opens a surface bound to a component catalog.
func CreateSurface(surfaceID, catalogID string) protocol.Message {
	return protocol.Message{CreateSurface: &protocol.CreateSurface{
		SurfaceID: surfaceID,
		CatalogID: catalogID,
	}}
}

// CreateSurfaceWithTheme opens a themed surface.
func CreateSurfaceWithTheme(surfaceID, catalogID string, theme map[string]any) protocol.Message {
	return protocol.Message{CreateSurface: &protocol.CreateSurface{
		SurfaceID: surfaceID,
		CatalogID: catalogID,
		Theme:     theme,
	}}
}

// UpdateComponents replaces or extends the surface's component set.
// The components field is always an array on the wire, even when empty.
func UpdateComponents(surfaceID string, components ...protocol.Component) protocol.Message {
	if components == nil {
		components = []protocol.Component{}
	}
	return protocol.Message{UpdateComponents: &protocol.UpdateComponents{
		SurfaceID:  surfaceID,
		Components: components,
	}}
}

// UpdateDataModel edits the surface's data model at path. An empty op
// means replace.
func UpdateDataModel(surfaceID, op, path string, value any) protocol.Message {
	return protocol.Message{UpdateDataModel: &protocol.UpdateDataModel{
		SurfaceID: surfaceID,
		Op:        op,
		Path:      path,
		Value:     value,
	}}
}

// DeleteSurface tears the surface down.
func DeleteSurface(surfaceID string) protocol.Message {
	return protocol.Message{DeleteSurface: &protocol.DeleteSurface{
		SurfaceID: surfaceID,
	}}
}
