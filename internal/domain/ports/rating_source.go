package ports

// RatingSource resolves a community difficulty rating for a question,
// keyed by its exact English title.
type RatingSource interface {
	Rating(title string) (int, bool)
}
