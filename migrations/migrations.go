// Package migrations embeds the schema migration SQL for both supported
// storage drivers. The stores apply these through golang-migrate; the seed
// and cleanup commands never touch them.
package migrations

import "embed"

//go:embed sqlite
var SQLite embed.FS

//go:embed postgres
var Postgres embed.FS
