package models

// SearchKind selects the professor field a search matches against
type SearchKind string

const (
	SearchByName    SearchKind = "nombre"
	SearchBySubject SearchKind = "materia"
	SearchByCareer  SearchKind = "carrera"
)

// ParseSearchKind validates a raw search type
func ParseSearchKind(raw string) (SearchKind, bool) {
	switch kind := SearchKind(raw); kind {
	case SearchByName, SearchBySubject, SearchByCareer:
		return kind, true
	default:
		return "", false
	}
}
