package protocol

// Validation issue codes. The set is closed and stable: clients and
// tests switch on these identifiers, so new checks reuse them rather
// than minting new ones.
const (
	CodeMissingSurfaceID        = "MISSING_SURFACE_ID"
	CodeMissingCatalogID        = "MISSING_CATALOG_ID"
	CodeInvalidPrimaryColor     = "INVALID_PRIMARY_COLOR"
	CodeInvalidComponents       = "INVALID_COMPONENTS"
	CodeMissingComponentID      = "MISSING_COMPONENT_ID"
	CodeDuplicateComponentID    = "DUPLICATE_COMPONENT_ID"
	CodeMissingComponentType    = "MISSING_COMPONENT_TYPE"
	CodeUnknownComponentType    = "UNKNOWN_COMPONENT_TYPE"
	CodeMissingRootComponent    = "MISSING_ROOT_COMPONENT"
	CodeMissingRequiredProperty = "MISSING_REQUIRED_PROPERTY"
	CodeInvalidOp               = "INVALID_OP"
	CodeUnnecessaryValue        = "UNNECESSARY_VALUE"
	CodeMissingValue            = "MISSING_VALUE"
	CodeInvalidMessageType      = "INVALID_MESSAGE_TYPE"
)
