package model

// SupportResistance is the historical price floor and ceiling of a series.
type SupportResistance struct {
	Support    float64 `json:"support"`
	Resistance float64 `json:"resistance"`
}

// Width returns resistance minus support.
func (sr SupportResistance) Width() float64 { return sr.Resistance - sr.Support }

// Position returns where price sits within the band (0.0~1.0).
// A flat band yields 0.5.
func (sr SupportResistance) Position(price float64) float64 {
	if sr.Resistance == sr.Support {
		return 0.5
	}
	pos := (price - sr.Support) / (sr.Resistance - sr.Support)
	if pos < 0 {
		pos = 0
	}
	if pos > 1 {
		pos = 1
	}
	return pos
}
