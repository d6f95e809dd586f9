package schema

import "strings"

// FromSchema extracts entries from a structured schema document.
//
// When the document nests its configuration under properties.env, that
// object is the root; otherwise the top-level properties are used. Each
// level's "required" list applies to its immediate children only. Names in
// a required list with no matching property are ignored.
func FromSchema(doc *Object) []Entry {
	if doc == nil {
		return nil
	}

	props := doc.Object("properties")
	if props == nil {
		return nil
	}

	root := doc
	if env := props.Object("env"); env != nil && env.Object("properties") != nil {
		root = env
	}

	var entries []Entry
	seen := make(map[string]bool)
	walkProperties(root.Object("properties"), root.StringSet("required"), "", func(e Entry) {
		if seen[e.Key] {
			return
		}
		seen[e.Key] = true
		entries = append(entries, e)
	})
	return entries
}

func walkProperties(props *Object, required map[string]bool, prefix string, emit func(Entry)) {
	for _, name := range props.Keys() {
		path := name
		if prefix != "" {
			path = prefix + "_" + name
		}

		prop := props.Object(name)
		if isNamespace(prop) {
			walkProperties(prop.Object("properties"), prop.StringSet("required"), path, emit)
			continue
		}

		entry := Entry{
			Key:      strings.ToUpper(path),
			Required: required[name],
		}
		if prop != nil {
			if desc, ok := prop.String("description"); ok {
				entry.Description = desc
			}
			if def, ok := prop.Get("default"); ok {
				entry.Default = Stringify(def)
			}
		}
		emit(entry)
	}
}

func isNamespace(prop *Object) bool {
	if prop == nil {
		return false
	}
	typ, _ := prop.String("type")
	return typ == "object" && prop.Object("properties") != nil
}
