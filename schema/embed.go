// Package schema embeds the JSON schemas for dictmatch settings and case files.
package schema

import "embed"

// FS holds config.schema.json and case.schema.json.
//
//go:embed *.schema.json
var FS embed.FS
