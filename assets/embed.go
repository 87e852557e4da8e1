// Package assets embeds the fallback word list shipped with the binary.
package assets

import (
	"embed"
)

//go:embed default_words.json
var FS embed.FS

// DefaultWordsFile is the name of the embedded list inside FS.
const DefaultWordsFile = "default_words.json"

// DefaultWords returns the raw contents of the embedded word list.
func DefaultWords() ([]byte, error) {
	return FS.ReadFile(DefaultWordsFile)
}
