package messages

import "embed"

// FS holds the outbound message templates, one directory per locale plus
// shared partials.
//
//go:embed */*.txt.tmpl
var FS embed.FS
