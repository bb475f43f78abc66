package tiles

import "embed"

// dataFS embeds the palette definitions at build time.
//
//go:embed *.yaml
var dataFS embed.FS
