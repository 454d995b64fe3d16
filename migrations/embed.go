// Package migrations embeds the schema for price_configs, sessions and
// invoices so the goose programmatic API can apply it in tests and at
// server bootstrap.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time.
// Pass this to goose.NewProvider instead of relying on a filesystem
// path at runtime.
//
//go:embed *.sql
var FS embed.FS
