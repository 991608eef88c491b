package docs

import "embed"

// FS contains tutorials bundled with the didact binary.
//
//go:embed tutorials
var FS embed.FS

// StarterTutorial is written by "didact init <dir>".
const StarterTutorial = "tutorials/getting-started.didact.md"
