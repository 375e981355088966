package hourei

import "context"

// Law is a single entry from the e-Gov law index: the identity of one
// statute as returned by the /laws search endpoint.
type Law struct {
	// ID is the law ID used by the law_data endpoint (e.g., "405AC0000000088").
	ID string `json:"id"`

	// Num is the promulgation number (e.g., "平成五年法律第八十八号").
	Num string `json:"num"`

	// Title is the statute title of the current revision.
	Title string `json:"title"`
}

// LawService talks to the law API: it searches the statute index and
// fetches statute bodies as Standard Law XML.
type LawService interface {
	// SearchLaws returns the laws whose title matches the query.
	// The match semantics are the API's (substring match on the title).
	// Returns an empty slice, not nil, when nothing matches.
	SearchLaws(ctx context.Context, title string) ([]*Law, error)

	// ResolveLawID returns the ID of the law whose title equals title
	// exactly. Returns ENOTFOUND if no exact match exists.
	ResolveLawID(ctx context.Context, title string) (string, error)

	// FetchLawData returns the statute's XML representation.
	// Returns ENOTFOUND if the law ID is unknown to the API.
	FetchLawData(ctx context.Context, lawID string) (string, error)
}
