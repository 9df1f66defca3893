package detail

import "github.com/atotto/clipboard"

// CopyToClipboard places yanked text on the system clipboard.
func CopyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// PasteFromClipboard reads the system clipboard.
func PasteFromClipboard() (string, error) {
	return clipboard.ReadAll()
}
