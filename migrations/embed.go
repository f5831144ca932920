// Package migrations embeds the goose SQL migrations so binaries can apply
// them without the source tree.
package migrations

import "embed"

// FS holds the migrations under core/.
//
//go:embed core/*.sql
var FS embed.FS

// Dir is the directory within FS that goose reads.
const Dir = "core"
