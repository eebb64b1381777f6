package apireport

import (
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"

	"github.com/ben-polinsky/rushstack/apimodel"
)

// WriteDocument builds the document for root, persists it to path, and then
// validates the persisted file. The file is written before validation on
// purpose: a malformed document must remain on disk for inspection even
// though the run as a whole fails.
func (g *Generator) WriteDocument(path string, root *apimodel.Item) error {
	doc := g.Build(root)
	if err := writeJSONFile(path, doc); err != nil {
		return err
	}
	return ValidateFile(path)
}

func writeJSONFile(path string, doc any) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create api document: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode api document: %w", err)
	}
	return nil
}
