// Package migrations embeds the SQLite content catalog schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
