// Package gateway talks to the external movie-metadata API. Everything the
// rest of the app knows about movies comes through the MovieGateway
// interface, so usecases can be tested against a fake.
package gateway

import "context"

// MovieGateway is the collaborator contract the usecase layer depends on.
type MovieGateway interface {
	Popular(ctx context.Context, page int) (*MoviePage, error)
	TopRated(ctx context.Context, page int) (*MoviePage, error)
	Details(ctx context.Context, movieID int64) (*MovieDetail, error)
	Videos(ctx context.Context, movieID int64) ([]Video, error)
	Recommendations(ctx context.Context, movieID int64) (*MoviePage, error)
	Images(ctx context.Context, movieID int64) (*ImageSet, error)
	Search(ctx context.Context, query string, page int) (*MoviePage, error)
}

// Movie is one entry of a listing (popular, top rated, recommendations,
// search results).
type Movie struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
}

// MoviePage is one page of a listing.
type MoviePage struct {
	Page         int     `json:"page"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
	Results      []Movie `json:"results"`
}

type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type MovieDetail struct {
	Movie
	Tagline      string  `json:"tagline"`
	Runtime      int     `json:"runtime"`
	Genres       []Genre `json:"genres"`
	BackdropPath string  `json:"backdrop_path"`
}

type Video struct {
	ID       string `json:"id"`
	Key      string `json:"key"`
	Name     string `json:"name"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Official bool   `json:"official"`
}

type Image struct {
	FilePath string `json:"file_path"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

type ImageSet struct {
	Backdrops []Image `json:"backdrops"`
	Posters   []Image `json:"posters"`
}
