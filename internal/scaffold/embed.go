package scaffold

import "embed"

// templateFS embeds the Dockerfile and usage guide templates rendered into
// the project directory on first run.
//
//go:embed templates/*.tmpl
var templateFS embed.FS
