package models

// StationEntry is a named stop taken from a GTFS static bundle.
// Stops of the same station hierarchy share a ClusterID; free-standing
// stops are clustered by S2 cell.
type StationEntry struct {
	FeedID      string   `json:"feed_id"`
	StopID      string   `json:"stop_id"`
	Label       string   `json:"label"`
	Coordinates GeoPoint `json:"coordinates"`
	ClusterID   string   `json:"cluster_id"`
	ClusterType string   `json:"cluster_type"`
}
