// Package articles embeds the goose migrations for the postgres storage driver.
package articles

import "embed"

//go:embed *.sql
var FS embed.FS
