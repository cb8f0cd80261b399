package models

import (
	"encoding/binary"
	"errors"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkb"
)

// CoordsToWKB encodes a [lng, lat] pair as a WKB point for storage.
func CoordsToWKB(coords []float64) ([]byte, error) {
	if len(coords) != 2 {
		return nil, errors.New("coordinates must be a [lng, lat] pair")
	}
	point := geom.NewPointFlat(geom.XY, coords)
	return wkb.Marshal(point, binary.LittleEndian)
}

// CoordsFromWKB decodes a stored WKB point back into a [lng, lat] pair.
func CoordsFromWKB(data []byte) ([]float64, error) {
	if len(data) == 0 {
		return nil, nil
	}
	g, err := wkb.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	point, ok := g.(*geom.Point)
	if !ok {
		return nil, errors.New("stored geometry is not a point")
	}
	return point.FlatCoords(), nil
}
