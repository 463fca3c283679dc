package gtfs

import (
	"fmt"
	"strings"

	remoteGtfs "github.com/jamespfennell/gtfs"

	"tripcore.trainlog.org/internal/geo"
	"tripcore.trainlog.org/internal/models"
	"tripcore.trainlog.org/internal/search"
)

// StationCatalog is the searchable station list of one GTFS feed. Platforms,
// entrances and boarding areas are collapsed into their station, so each
// entry is something a traveller would type.
type StationCatalog struct {
	FeedID   string
	Stations []models.StationEntry
	Bounds   geo.BoundingBox

	byLabel    map[string]int
	normalized []string
}

// ParseCatalog parses a GTFS static zip and builds its station catalog.
func ParseCatalog(feedID string, data []byte) (*StationCatalog, error) {
	static, err := remoteGtfs.ParseStatic(data, remoteGtfs.ParseStaticOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to parse GTFS static data for feed %s: %w", feedID, err)
	}
	return NewCatalog(feedID, static.Stops), nil
}

// NewCatalog builds a catalog from parsed stops. A stop becomes an entry when
// it has a name and valid coordinates, and no other stop of the same cluster
// with the same name was seen before it.
func NewCatalog(feedID string, stops []remoteGtfs.Stop) *StationCatalog {
	c := &StationCatalog{
		FeedID:  feedID,
		byLabel: make(map[string]int),
	}

	seen := make(map[string]bool)
	path := make(models.Path, 0, len(stops))
	for _, stop := range stops {
		label := strings.TrimSpace(stop.Name)
		if label == "" || stop.Latitude == nil || stop.Longitude == nil {
			continue
		}
		if !geo.IsValidLatLon(*stop.Latitude, *stop.Longitude) {
			continue
		}
		clusterID, clusterType, ok := geo.ClusterID(stop)
		if !ok {
			continue
		}
		key := clusterID + "\x00" + label
		if seen[key] {
			continue
		}
		seen[key] = true

		entry := models.StationEntry{
			FeedID:      feedID,
			StopID:      stop.Id,
			Label:       label,
			Coordinates: models.GeoPoint{Lat: *stop.Latitude, Lng: *stop.Longitude},
			ClusterID:   clusterID,
			ClusterType: clusterType,
		}
		if _, dup := c.byLabel[label]; !dup {
			c.byLabel[label] = len(c.Stations)
		}
		c.Stations = append(c.Stations, entry)
		c.normalized = append(c.normalized, search.NormalizeForSearch(label))
		path = append(path, entry.Coordinates)
	}

	if bounds, err := geo.Bounds(path); err == nil {
		c.Bounds = bounds
	}
	return c
}

// Len returns the number of stations.
func (c *StationCatalog) Len() int {
	return len(c.Stations)
}

// Lookup returns the first station carrying label.
func (c *StationCatalog) Lookup(label string) (models.StationEntry, bool) {
	i, ok := c.byLabel[label]
	if !ok {
		return models.StationEntry{}, false
	}
	return c.Stations[i], true
}

// Candidates returns every distinct station label as a ranking candidate.
// Occurrences come from visits, keyed by label; nil visits means none.
func (c *StationCatalog) Candidates(visits map[string]int) []models.Candidate {
	out := make([]models.Candidate, 0, len(c.byLabel))
	for i, st := range c.Stations {
		if c.byLabel[st.Label] != i {
			continue
		}
		out = append(out, models.Candidate{Label: st.Label, Occurrences: visits[st.Label]})
	}
	return out
}

// Search returns the candidates whose label contains term, ignoring case
// and accents. An empty term matches every station.
func (c *StationCatalog) Search(term string) []models.Candidate {
	needle := search.NormalizeForSearch(term)
	out := make([]models.Candidate, 0)
	for i, st := range c.Stations {
		if c.byLabel[st.Label] != i {
			continue
		}
		if strings.Contains(c.normalized[i], needle) {
			out = append(out, models.Candidate{Label: st.Label})
		}
	}
	return out
}
