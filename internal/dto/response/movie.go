package response

import (
	"movie-browser/internal/gateway"
)

// MovieSummary is one listing entry plus whether the current user has
// favourited it, which the views use to mark liked movies.
type MovieSummary struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
	Favourited  bool    `json:"favourited"`
}

// HomeView backs the index view: one page of each listing.
type HomeView struct {
	Popular  []MovieSummary `json:"popular_movies"`
	TopRated []MovieSummary `json:"top_rated_movies"`
}

// MovieListView backs the movies_list view.
type MovieListView struct {
	ListType   string         `json:"list_type"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
	Movies     []MovieSummary `json:"movies"`
}

// MovieDetailView backs the details view.
type MovieDetailView struct {
	Movie           *gateway.MovieDetail `json:"movie"`
	VideoKey        string               `json:"video_key"`
	Recommendations []MovieSummary       `json:"recomendation"`
	Images          *gateway.ImageSet    `json:"images"`
	Comments        []CommentResponse    `json:"comments"`
}

// ProfileView backs the profile view: full details for each favourite.
type ProfileView struct {
	Username        string                 `json:"username"`
	FavouriteMovies []*gateway.MovieDetail `json:"favourite_movies"`
}

// Helper converters
func MovieToSummary(movie gateway.Movie, favourited bool) MovieSummary {
	return MovieSummary{
		ID:          movie.ID,
		Title:       movie.Title,
		Overview:    movie.Overview,
		PosterPath:  movie.PosterPath,
		ReleaseDate: movie.ReleaseDate,
		VoteAverage: movie.VoteAverage,
		Favourited:  favourited,
	}
}

// PageToSummaries marks each movie of a listing page against the set of
// favourited movie ids.
func PageToSummaries(page *gateway.MoviePage, favourites map[int64]bool) []MovieSummary {
	if page == nil {
		return nil
	}

	summaries := make([]MovieSummary, len(page.Results))
	for i, movie := range page.Results {
		summaries[i] = MovieToSummary(movie, favourites[movie.ID])
	}
	return summaries
}
