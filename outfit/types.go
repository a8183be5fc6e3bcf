// Package outfit loads dropdown option data and presets for the outfit
// nodes from their JSON data files.
package outfit

// Control tokens reserved at the head of every option list.
const (
	None   = "none"
	Random = "random"
)

// Selection is a flat field -> chosen value map. A value is either a
// concrete option, "none" (omit) or "random" (resolve at build time).
type Selection map[string]string

// Presets maps gender -> preset name -> partial selection.
type Presets map[string]map[string]Selection

// IsControl reports whether v is one of the reserved option values.
func IsControl(v string) bool {
	return v == None || v == Random
}

// Clone returns a shallow copy of the selection.
func (s Selection) Clone() Selection {
	out := make(Selection, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Unset reports whether the field should be treated as fillable by a
// preset: missing, empty or still at a control value.
func (s Selection) Unset(key string) bool {
	v, ok := s[key]
	return !ok || v == "" || IsControl(v)
}
