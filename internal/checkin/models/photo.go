package models

// PhotoReference is an opaque local URI or path to a captured image.
// The zero value means no photo is attached.
type PhotoReference string

// IsZero reports whether no photo is referenced.
func (p PhotoReference) IsZero() bool {
	return p == ""
}

func (p PhotoReference) String() string {
	return string(p)
}
