package emailhash_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/orgdir-lab/orgdir/pkg/utils/emailhash"
)

func TestFingerprint(t *testing.T) {
	t.Run("is deterministic", func(t *testing.T) {
		a := emailhash.Fingerprint("someone@example.com")
		b := emailhash.Fingerprint("someone@example.com")
		gt.Value(t, a).Equal(b)
	})

	t.Run("normalizes case and whitespace", func(t *testing.T) {
		gt.Value(t, emailhash.Fingerprint(" A@B.com ")).
			Equal(emailhash.Fingerprint("a@b.com"))
	})

	t.Run("matches known MD5 digest", func(t *testing.T) {
		// Reference hash from the Gravatar documentation
		gt.Value(t, emailhash.Fingerprint("MyEmailAddress@example.com ")).
			Equal("0bc83cb571cd1c50ba6f3e8a78ef1346")
	})

	t.Run("produces 32 hex characters", func(t *testing.T) {
		hash := emailhash.Fingerprint("x@y.z")
		gt.Number(t, len(hash)).Equal(32)
		for _, r := range hash {
			if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
				t.Errorf("unexpected character %q in hash %q", r, hash)
			}
		}
	})

	t.Run("empty input still hashes", func(t *testing.T) {
		gt.Value(t, emailhash.Fingerprint("")).
			Equal("d41d8cd98f00b204e9800998ecf8427e")
	})
}
