package geojson

import (
	"github.com/precipitation-dashboard/internal/domain"
	"github.com/twpayne/go-geom"
	geomjson "github.com/twpayne/go-geom/encoding/geojson"
)

const srid = 4326

// emptyMessage is attached to collections with no features so map
// clients can tell "no matches" from a broken response.
const emptyMessage = "no data found for the given filters"

// FeatureCollection is the wire shape served by the map data endpoint.
// Message is present only when Features is empty.
type FeatureCollection struct {
	Type     string              `json:"type"`
	Features []*geomjson.Feature `json:"features"`
	Message  string              `json:"message,omitempty"`
}

// NewFeatureCollection encodes records as GeoJSON point features. Each
// record keeps its non-geometry attributes as feature properties;
// coordinates are (longitude, latitude) per the GeoJSON axis order, in
// WGS84.
func NewFeatureCollection(records []domain.Record) *FeatureCollection {
	features := make([]*geomjson.Feature, 0, len(records))
	for i := range records {
		r := &records[i]
		features = append(features, &geomjson.Feature{
			Geometry: geom.NewPointFlat(geom.XY, []float64{r.Lon, r.Lat}).SetSRID(srid),
			Properties: map[string]interface{}{
				"uf":            r.UF,
				"municipality":  r.Municipality,
				"precipitation": r.Precipitation,
				"date":          r.Date,
			},
		})
	}

	fc := &FeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	}
	if len(features) == 0 {
		fc.Message = emptyMessage
	}
	return fc
}
