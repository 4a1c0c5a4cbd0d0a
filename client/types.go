package client

// Movie is a single catalog entry.
type Movie struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Director string  `json:"director"`
	Genre    string  `json:"genre"`
	Rating   float64 `json:"rating"`
}

// MovieDetails pairs a movie with its generated opinion.
type MovieDetails struct {
	Movie
	Opinion string `json:"opinion"`
}

// AddMovieRequest is the payload for creating a movie.
type AddMovieRequest struct {
	Title    string  `json:"title"`
	Director string  `json:"director"`
	Genre    string  `json:"genre"`
	Rating   float64 `json:"rating"`
}

// Recommendation is one recommendation entry with its contributing source.
type Recommendation struct {
	Movie
	Source string `json:"source"`
}

// Store field values reported by the liveness endpoint.
const (
	StoreConnected    = "connected"
	StoreDisconnected = "disconnected"
)

// HealthResponse is the liveness check payload.
type HealthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Store         string  `json:"store"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}
