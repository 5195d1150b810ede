package model

// Profile holds the supplementary fields fetched from the external profile
// service for a single email address. Absent fields are empty strings.
type Profile struct {
	AboutMe      string
	ThumbnailURL string
}

// Empty reports whether the profile carries no data
func (p *Profile) Empty() bool {
	return p.AboutMe == "" && p.ThumbnailURL == ""
}
