package gravatar_test

import (
	"fmt"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/orgdir-lab/orgdir/pkg/service/gravatar"
	"github.com/orgdir-lab/orgdir/pkg/utils/emailhash"
)

func TestAvatarURL(t *testing.T) {
	hash := emailhash.Fingerprint("jordan@example.com")

	t.Run("no options", func(t *testing.T) {
		got := gravatar.AvatarURL("jordan@example.com", gravatar.AvatarOptions{})
		gt.Value(t, got).Equal(fmt.Sprintf("https://www.gravatar.com/avatar/%s", hash))
	})

	t.Run("all options", func(t *testing.T) {
		got := gravatar.AvatarURL("jordan@example.com", gravatar.AvatarOptions{
			Size:    200,
			Default: "identicon",
			Rating:  "g",
		})
		gt.Value(t, got).Equal(fmt.Sprintf("https://www.gravatar.com/avatar/%s?d=identicon&r=g&s=200", hash))
	})

	t.Run("email casing does not change the URL", func(t *testing.T) {
		a := gravatar.AvatarURL(" Jordan@Example.COM ", gravatar.AvatarOptions{Size: 80})
		b := gravatar.AvatarURL("jordan@example.com", gravatar.AvatarOptions{Size: 80})
		gt.Value(t, a).Equal(b)
	})
}
