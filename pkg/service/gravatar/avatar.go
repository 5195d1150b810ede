package gravatar

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/orgdir-lab/orgdir/pkg/utils/emailhash"
)

// AvatarURL builds the avatar image URL for an email address. It is a pure
// function of its inputs; no I/O is performed.
func AvatarURL(email string, opts AvatarOptions) string {
	return avatarURL(DefaultBaseURL, email, opts)
}

func avatarURL(baseURL, email string, opts AvatarOptions) string {
	params := url.Values{}
	if opts.Size > 0 {
		params.Set("s", strconv.Itoa(opts.Size))
	}
	if opts.Default != "" {
		params.Set("d", opts.Default)
	}
	if opts.Rating != "" {
		params.Set("r", opts.Rating)
	}

	u := fmt.Sprintf("%s/avatar/%s", baseURL, emailhash.Fingerprint(email))
	if encoded := params.Encode(); encoded != "" {
		u += "?" + encoded
	}
	return u
}

// AvatarURL builds an avatar image URL against the client's configured
// endpoint.
func (c *Client) AvatarURL(email string, opts AvatarOptions) string {
	return avatarURL(c.baseURL, email, opts)
}
