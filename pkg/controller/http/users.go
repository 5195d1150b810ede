package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/orgdir-lab/orgdir/pkg/domain/model"
	"github.com/orgdir-lab/orgdir/pkg/domain/types"
	"github.com/orgdir-lab/orgdir/pkg/service/gravatar"
	"github.com/orgdir-lab/orgdir/pkg/utils/errutil"
	"github.com/orgdir-lab/orgdir/pkg/utils/safe"
)

type userResponse struct {
	ID              string `json:"uid"`
	DisplayName     string `json:"displayName"`
	Email           string `json:"email,omitempty"`
	JobTitle        string `json:"job_title"`
	AboutMe         string `json:"aboutMe,omitempty"`
	ThumbnailURL    string `json:"thumbnailUrl,omitempty"`
	DepartmentColor string `json:"departmentColor"`
}

func (s *Server) toUserResponse(u *model.User) userResponse {
	return userResponse{
		ID:              u.ID.String(),
		DisplayName:     u.DisplayName,
		Email:           u.Email,
		JobTitle:        u.JobTitle,
		AboutMe:         u.AboutMe,
		ThumbnailURL:    u.ThumbnailURL,
		DepartmentColor: s.uc.ColorFor(u.JobTitle).String(),
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	safe.Write(r.Context(), w, data)
}

// listUsersHandler serves the directory listing. Supports ?department= for
// case-insensitive filtering and ?enrich=1 for profile-enriched records.
func (s *Server) listUsersHandler() http.HandlerFunc {
	type response struct {
		Users     []userResponse `json:"users"`
		Freshness string         `json:"freshness"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var users []*model.User
		var freshness types.Freshness

		if isTruthy(r.URL.Query().Get("enrich")) {
			users, freshness = s.uc.ListFullUsers(r.Context())
		} else {
			users, freshness = s.uc.ListUsers(r.Context())
		}

		if department := r.URL.Query().Get("department"); department != "" {
			filtered := make([]*model.User, 0, len(users))
			for _, u := range users {
				if strings.EqualFold(u.JobTitle, department) {
					filtered = append(filtered, u)
				}
			}
			users = filtered
		}

		resp := response{
			Users:     make([]userResponse, len(users)),
			Freshness: freshness.String(),
		}
		for i, u := range users {
			resp.Users[i] = s.toUserResponse(u)
		}

		writeJSON(w, r, resp)
	}
}

// getUserHandler serves a single enriched record by ID.
func (s *Server) getUserHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := types.UserID(chi.URLParam(r, "id"))
		if err := id.Validate(); err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}

		user, _ := s.uc.GetFullUser(r.Context(), id)
		if user == nil {
			errutil.HandleHTTP(r.Context(), w, goerr.New("user not found", goerr.V("uid", id)), http.StatusNotFound)
			return
		}

		writeJSON(w, r, s.toUserResponse(user))
	}
}

// departmentsHandler serves the department filter data.
func (s *Server) departmentsHandler() http.HandlerFunc {
	type departmentResponse struct {
		Name    string `json:"name"`
		Color   string `json:"color"`
		Members int    `json:"members"`
	}
	type response struct {
		Departments []departmentResponse `json:"departments"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		departments, _ := s.uc.Departments(r.Context())

		resp := response{
			Departments: make([]departmentResponse, len(departments)),
		}
		for i, d := range departments {
			resp.Departments[i] = departmentResponse{
				Name:    d.Name,
				Color:   d.Color.String(),
				Members: d.Members,
			}
		}

		writeJSON(w, r, resp)
	}
}

// avatarHandler redirects to the avatar image for ?email= with optional
// s/d/r parameters.
func (s *Server) avatarHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.gravatar == nil {
			errutil.HandleHTTP(r.Context(), w, goerr.New("avatar service is not configured"), http.StatusNotFound)
			return
		}

		email := r.URL.Query().Get("email")
		if email == "" {
			errutil.HandleHTTP(r.Context(), w, goerr.New("email parameter is required"), http.StatusBadRequest)
			return
		}

		opts := gravatar.AvatarOptions{
			Default: r.URL.Query().Get("d"),
			Rating:  r.URL.Query().Get("r"),
		}
		if raw := r.URL.Query().Get("s"); raw != "" {
			size, err := strconv.Atoi(raw)
			if err != nil || size <= 0 {
				errutil.HandleHTTP(r.Context(), w, goerr.New("invalid size parameter", goerr.V("s", raw)), http.StatusBadRequest)
				return
			}
			opts.Size = size
		}

		http.Redirect(w, r, s.gravatar.AvatarURL(email, opts), http.StatusFound)
	}
}

func isTruthy(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
