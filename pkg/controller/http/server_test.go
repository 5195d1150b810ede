package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	httpctrl "github.com/orgdir-lab/orgdir/pkg/controller/http"
	"github.com/orgdir-lab/orgdir/pkg/domain/model"
	"github.com/orgdir-lab/orgdir/pkg/service/directory"
	"github.com/orgdir-lab/orgdir/pkg/service/gravatar"
	"github.com/orgdir-lab/orgdir/pkg/usecase"
	"github.com/orgdir-lab/orgdir/pkg/utils/emailhash"
)

type staticSource struct {
	users []*model.User
}

func (s *staticSource) Load(ctx context.Context) ([]*model.User, error) {
	return s.users, nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store := directory.New(&staticSource{users: []*model.User{
		{ID: "u-001", DisplayName: "Jordan Lee", Email: "jordan@example.com", JobTitle: "Finance"},
		{ID: "u-002", DisplayName: "Sam Park", Email: "sam@example.com", JobTitle: "Marketing"},
		{ID: "u-003", DisplayName: "Riley Chen", JobTitle: "finance"},
	}})

	server := httpctrl.New(
		usecase.New(store),
		httpctrl.WithGravatarClient(gravatar.NewClient()),
	)

	srv := httptest.NewServer(server)
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, v any) *http.Response {
	t.Helper()

	resp, err := http.Get(url)
	gt.NoError(t, err).Required()
	t.Cleanup(func() { _ = resp.Body.Close() })

	if v != nil {
		gt.NoError(t, json.NewDecoder(resp.Body).Decode(v)).Required()
	}
	return resp
}

func TestListUsers(t *testing.T) {
	srv := newTestServer(t)

	type listResponse struct {
		Users []struct {
			ID              string `json:"uid"`
			DisplayName     string `json:"displayName"`
			JobTitle        string `json:"job_title"`
			DepartmentColor string `json:"departmentColor"`
		} `json:"users"`
		Freshness string `json:"freshness"`
	}

	t.Run("returns all users with colors", func(t *testing.T) {
		var body listResponse
		resp := getJSON(t, srv.URL+"/api/users", &body)

		gt.Number(t, resp.StatusCode).Equal(http.StatusOK)
		gt.Array(t, body.Users).Length(3)
		gt.Value(t, body.Freshness).Equal("fresh")
		gt.Value(t, body.Users[0].DepartmentColor).Equal("#4CAF50")
	})

	t.Run("department filter is case-insensitive", func(t *testing.T) {
		var body listResponse
		getJSON(t, srv.URL+"/api/users?department=FINANCE", &body)

		gt.Array(t, body.Users).Length(2)
		for _, u := range body.Users {
			gt.Value(t, u.DepartmentColor).Equal("#4CAF50")
		}
	})
}

func TestGetUser(t *testing.T) {
	srv := newTestServer(t)

	t.Run("returns a single record", func(t *testing.T) {
		var body struct {
			ID          string `json:"uid"`
			DisplayName string `json:"displayName"`
		}
		resp := getJSON(t, srv.URL+"/api/users/u-002", &body)

		gt.Number(t, resp.StatusCode).Equal(http.StatusOK)
		gt.Value(t, body.DisplayName).Equal("Sam Park")
	})

	t.Run("missing record returns 404", func(t *testing.T) {
		resp := getJSON(t, srv.URL+"/api/users/missing-id", nil)
		gt.Number(t, resp.StatusCode).Equal(http.StatusNotFound)
	})
}

func TestDepartments(t *testing.T) {
	srv := newTestServer(t)

	var body struct {
		Departments []struct {
			Name    string `json:"name"`
			Color   string `json:"color"`
			Members int    `json:"members"`
		} `json:"departments"`
	}
	getJSON(t, srv.URL+"/api/departments", &body)

	// "Finance" and "finance" are distinct names in the source document
	gt.Array(t, body.Departments).Length(3)
	for _, d := range body.Departments {
		if d.Name == "Marketing" {
			gt.Value(t, d.Color).Equal("#2196F3")
			gt.Number(t, d.Members).Equal(1)
		}
	}
}

func TestAvatar(t *testing.T) {
	srv := newTestServer(t)

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	t.Run("redirects to the avatar URL", func(t *testing.T) {
		resp, err := client.Get(srv.URL + "/api/avatar?email=jordan@example.com&s=200&d=identicon")
		gt.NoError(t, err).Required()
		defer resp.Body.Close()

		gt.Number(t, resp.StatusCode).Equal(http.StatusFound)

		location := resp.Header.Get("Location")
		hash := emailhash.Fingerprint("jordan@example.com")
		gt.Value(t, location).Equal("https://www.gravatar.com/avatar/" + hash + "?d=identicon&s=200")
	})

	t.Run("missing email returns 400", func(t *testing.T) {
		resp, err := client.Get(srv.URL + "/api/avatar")
		gt.NoError(t, err).Required()
		defer resp.Body.Close()
		gt.Number(t, resp.StatusCode).Equal(http.StatusBadRequest)
	})
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	resp := getJSON(t, srv.URL+"/healthz", nil)
	gt.Number(t, resp.StatusCode).Equal(http.StatusOK)
}
