package schema

// Normalize selects the configuration surface of a template.
//
// Structured entries win whenever the schema yields at least one entry. The
// flat document is only requested, through flat, when it does not. A nil
// flat function is treated as an absent flat document. Zero entries from
// both paths is reported as ok == false.
func Normalize(structured *Object, flat func() string) (entries []Entry, format Format, ok bool) {
	if entries := FromSchema(structured); len(entries) > 0 {
		return entries, FormatStructured, true
	}

	if flat == nil {
		return nil, "", false
	}

	if entries := ParseFlat(flat()); len(entries) > 0 {
		return entries, FormatFlat, true
	}

	return nil, "", false
}
