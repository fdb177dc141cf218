package interpoly

import (
	"encoding/json"
)

// Point is a single (x, y) sample.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dump is a serializable representation of an InterPoly. Only the samples
// are kept, in insertion order; the divided-difference table is rebuilt
// on restore.
type Dump struct {
	Points []Point `json:"points"`
}

// FromDump replaces the contents of f with the points of d.
// On error f is left unchanged.
func (f *InterPoly) FromDump(d *Dump) error {
	xs := make([]float64, len(d.Points))
	ys := make([]float64, len(d.Points))
	for i, p := range d.Points {
		xs[i], ys[i] = p.X, p.Y
	}

	// Points may come from an untrusted source.
	g, err := NewFromPoints(xs, ys)
	if err != nil {
		return err
	}
	f.Assign(g)
	return nil
}

// Dump generates a serializable dump for an interpolator.
func (f *InterPoly) Dump() *Dump {
	d := &Dump{Points: make([]Point, len(f.x))}
	for i := range f.x {
		d.Points[i] = Point{X: f.x[i], Y: f.table[rowOffset(i+1)]}
	}
	return d
}

// MarshalJSON implements the json.Marshaler interface for InterPoly.
func (f *InterPoly) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Dump())
}

// UnmarshalJSON implements the json.Unmarshaler interface for InterPoly.
func (f *InterPoly) UnmarshalJSON(bytes []byte) error {
	var dump Dump
	if err := json.Unmarshal(bytes, &dump); err != nil {
		return err
	}
	return f.FromDump(&dump)
}
