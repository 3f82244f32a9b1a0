package nativetags

import (
	_ "embed"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

//go:embed native_tags.hcl
var nativeManifest []byte

const nativeManifestName = "native_tags.hcl"

// manifestFile is the top-level structure of the tag manifest.
type manifestFile struct {
	Categories []*manifestCategory `hcl:"category,block"`
}

// manifestCategory groups the tags of one top-level category.
type manifestCategory struct {
	Name string         `hcl:"name,label"`
	Tags []*manifestTag `hcl:"tag,block"`
}

// manifestTag is a single `tag` block.
type manifestTag struct {
	Path        string `hcl:"path,label"`
	Description string `hcl:"description"`
}

// manifestEntry is a flattened manifest tag, in file order.
type manifestEntry struct {
	Category    string
	Path        string
	Description string
}

// parseManifest decodes the manifest source and flattens it in file order.
func parseManifest(src []byte, filename string) ([]manifestEntry, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse tag manifest %s: %w", filename, diags)
	}

	var mf manifestFile
	if diags := gohcl.DecodeBody(file.Body, nil, &mf); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode tag manifest %s: %w", filename, diags)
	}

	var entries []manifestEntry
	for _, cat := range mf.Categories {
		for _, t := range cat.Tags {
			entries = append(entries, manifestEntry{
				Category:    cat.Name,
				Path:        t.Path,
				Description: t.Description,
			})
		}
	}
	return entries, nil
}
