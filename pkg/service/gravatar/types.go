package gravatar

// profileResponse mirrors the shape of the Gravatar profile document. Only
// the first entry's aboutMe and thumbnailUrl are consumed; everything else
// the service returns is ignored here.
type profileResponse struct {
	Entry []profileEntry `json:"entry"`
}

type profileEntry struct {
	Hash         string `json:"hash"`
	ProfileURL   string `json:"profileUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
	DisplayName  string `json:"displayName"`
	AboutMe      string `json:"aboutMe"`
}

// AvatarOptions are the query parameters of a Gravatar avatar image URL.
// Zero values are omitted from the generated URL.
type AvatarOptions struct {
	// Size is the requested image size in pixels (the "s" parameter)
	Size int
	// Default names the fallback image style (the "d" parameter, e.g. "identicon")
	Default string
	// Rating is the maximum allowed image rating (the "r" parameter, e.g. "g")
	Rating string
}
