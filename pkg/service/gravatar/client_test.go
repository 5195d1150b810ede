package gravatar_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/orgdir-lab/orgdir/pkg/service/gravatar"
	"github.com/orgdir-lab/orgdir/pkg/utils/emailhash"
)

const profileDoc = `{
  "entry": [
    {
      "hash": "abc",
      "profileUrl": "https://gravatar.com/jordanlee",
      "thumbnailUrl": "https://gravatar.com/avatar/abc",
      "displayName": "Jordan Lee",
      "aboutMe": "Numbers person"
    }
  ]
}`

func TestClientFetchProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("parses first entry", func(t *testing.T) {
		var gotPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(profileDoc))
		}))
		defer srv.Close()

		client := gravatar.NewClient(gravatar.WithBaseURL(srv.URL))
		profile := gt.R1(client.FetchProfile(ctx, "jordan@example.com")).NoError(t)

		gt.Value(t, profile.AboutMe).Equal("Numbers person")
		gt.Value(t, profile.ThumbnailURL).Equal("https://gravatar.com/avatar/abc")

		wantPath := fmt.Sprintf("/%s.json", emailhash.Fingerprint("jordan@example.com"))
		gt.Value(t, gotPath).Equal(wantPath)
	})

	t.Run("missing fields default to empty strings", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"entry": [{"hash": "abc"}]}`))
		}))
		defer srv.Close()

		client := gravatar.NewClient(gravatar.WithBaseURL(srv.URL))
		profile := gt.R1(client.FetchProfile(ctx, "jordan@example.com")).NoError(t)

		gt.Value(t, profile.AboutMe).Equal("")
		gt.Value(t, profile.ThumbnailURL).Equal("")
	})

	t.Run("empty entry array yields empty profile", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"entry": []}`))
		}))
		defer srv.Close()

		client := gravatar.NewClient(gravatar.WithBaseURL(srv.URL))
		profile := gt.R1(client.FetchProfile(ctx, "jordan@example.com")).NoError(t)
		gt.Value(t, profile.Empty()).Equal(true)
	})

	t.Run("non-200 status returns error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer srv.Close()

		client := gravatar.NewClient(gravatar.WithBaseURL(srv.URL))
		_, err := client.FetchProfile(ctx, "nobody@example.com")
		gt.Value(t, err).NotNil()
	})

	t.Run("malformed payload returns error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>not json</html>"))
		}))
		defer srv.Close()

		client := gravatar.NewClient(gravatar.WithBaseURL(srv.URL))
		_, err := client.FetchProfile(ctx, "jordan@example.com")
		gt.Value(t, err).NotNil()
	})

	t.Run("slow server is cancelled by timeout", func(t *testing.T) {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
				// request was actively cancelled by the client
			}
		}))
		defer srv.Close()
		defer close(release)

		client := gravatar.NewClient(
			gravatar.WithBaseURL(srv.URL),
			gravatar.WithTimeout(50*time.Millisecond),
		)

		start := time.Now()
		_, err := client.FetchProfile(ctx, "jordan@example.com")
		gt.Value(t, err).NotNil()

		if elapsed := time.Since(start); elapsed > 2*time.Second {
			t.Errorf("lookup was not cancelled promptly, took %v", elapsed)
		}
	})
}
