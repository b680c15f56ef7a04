package models

import "strings"

// Place - кандидат местоположения из геокодера
type Place struct {
	DisplayName string  `json:"display_name"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
}

// ShortName возвращает первый сегмент полного адреса:
// "Yale Bowl, Derby Avenue, New Haven" -> "Yale Bowl"
func (p *Place) ShortName() string {
	name, _, _ := strings.Cut(p.DisplayName, ",")
	return strings.TrimSpace(name)
}
