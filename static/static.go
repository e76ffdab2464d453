// Package static embeds the storefront's stylesheet so the binary
// ships self-contained.
package static

import "embed"

//go:embed style.css
var FS embed.FS
