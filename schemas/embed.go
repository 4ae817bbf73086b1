package schemas

import "embed"

// SchemasFS содержит JSON-схемы входных запросов API.
//
//go:embed requests
var SchemasFS embed.FS
