// Package migrations embeds the schema files applied at boot, so the binary
// does not depend on its working directory to find them.
package migrations

import "embed"

//go:embed *.sql
var Files embed.FS
