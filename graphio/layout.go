package graphio

import (
	"io"
	"math"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

// Point is a 2-D position in layout units.
type Point [2]float64

// Layout maps vertex IDs to positions. On disk it is a YAML mapping:
//
//	A: [0, 1.5]
//	B: [2, 0]
type Layout map[string]Point

// CircleLayout places ids evenly on a circle of the given radius, starting
// at the top and going clockwise.
func CircleLayout(ids []string, radius float64) Layout {
	l := make(Layout, len(ids))
	for i, id := range ids {
		theta := math.Pi/2 - 2*math.Pi*float64(i)/float64(len(ids))
		l[id] = Point{round2(radius * math.Cos(theta)), round2(radius * math.Sin(theta))}
	}
	return l
}

// Fill returns a copy of l in which every id without a position is placed
// on a circle of the given radius, in ids order.
func (l Layout) Fill(ids []string, radius float64) Layout {
	out := make(Layout, len(ids))
	var missing []string
	for _, id := range ids {
		if p, ok := l[id]; ok {
			out[id] = p
		} else {
			missing = append(missing, id)
		}
	}
	for id, p := range CircleLayout(missing, radius) {
		out[id] = p
	}
	return out
}

// ReadLayout decodes a YAML layout.
func ReadLayout(r io.Reader) (Layout, error) {
	var l Layout
	if err := yaml.NewDecoder(r).Decode(&l); err != nil {
		if errors.Is(err, io.EOF) {
			return Layout{}, nil
		}
		return nil, errors.Wrap(err, "graphio: decode layout")
	}
	return l, nil
}

// LoadLayout reads a YAML layout file.
func LoadLayout(path string) (Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "graphio: open layout")
	}
	defer f.Close()
	return ReadLayout(f)
}

// WriteLayout encodes l as YAML.
func WriteLayout(w io.Writer, l Layout) error {
	data, err := yaml.Marshal(l)
	if err != nil {
		return errors.Wrap(err, "graphio: encode layout")
	}
	_, err = w.Write(data)
	return errors.Wrap(err, "graphio: write layout")
}

func round2(f float64) float64 { return math.Round(f*100) / 100 }
