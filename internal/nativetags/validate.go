package nativetags

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/specialistvlad/tircore/internal/tag"
)

var tagType = reflect.TypeOf(tag.Tag{})

// slotFields maps each `tag:"..."` path on a slots struct type to its field
// index.
func slotFields(slots reflect.Type) (map[string]int, []string) {
	fields := make(map[string]int)
	var errs []string

	for i := 0; i < slots.NumField(); i++ {
		field := slots.Field(i)
		path, ok := field.Tag.Lookup("tag")
		if !ok {
			continue
		}
		if !field.IsExported() {
			errs = append(errs, fmt.Sprintf("field '%s' is unexported and cannot hold tag '%s'", field.Name, path))
			continue
		}
		if field.Type != tagType {
			errs = append(errs, fmt.Sprintf("field '%s' for tag '%s' has type %s, want %s", field.Name, path, field.Type, tagType))
			continue
		}
		if prev, exists := fields[path]; exists {
			errs = append(errs, fmt.Sprintf("fields '%s' and '%s' both claim tag '%s'", slots.Field(prev).Name, field.Name, path))
			continue
		}
		fields[path] = i
	}
	return fields, errs
}

// validateManifest performs a strict parity check between the manifest and
// the Go slots struct, and checks every manifest entry on its own.
func validateManifest(entries []manifestEntry, slots reflect.Type) (map[string]int, error) {
	fields, errs := slotFields(slots)

	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if err := tag.ValidatePath(e.Path); err != nil {
			errs = append(errs, fmt.Sprintf("category '%s': %v", e.Category, err))
			continue
		}
		if !strings.HasPrefix(e.Path, e.Category+".") {
			errs = append(errs, fmt.Sprintf("tag '%s' is declared outside its category '%s'", e.Path, e.Category))
		}
		if _, dup := seen[e.Path]; dup {
			errs = append(errs, fmt.Sprintf("tag '%s' is declared more than once", e.Path))
			continue
		}
		seen[e.Path] = struct{}{}

		if _, ok := fields[e.Path]; !ok {
			errs = append(errs, fmt.Sprintf("manifest declares tag '%s' which is not found in Go struct", e.Path))
		}
	}

	// Walk the struct rather than the map so errors come out in field order.
	for i := 0; i < slots.NumField(); i++ {
		path, ok := slots.Field(i).Tag.Lookup("tag")
		if !ok {
			continue
		}
		if idx, bound := fields[path]; !bound || idx != i {
			continue
		}
		if _, ok := seen[path]; !ok {
			errs = append(errs, fmt.Sprintf("Go struct has field '%s' for tag '%s' which is not declared in manifest", slots.Field(i).Name, path))
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("native tag validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return fields, nil
}
