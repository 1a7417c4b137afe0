package assets

import "embed"

//go:embed web/*.html
var WebFS embed.FS

//go:embed migrations
var MigrationsFS embed.FS
