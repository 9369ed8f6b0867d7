package designfoli_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"designfoli-web/internal/casestudy"
	"designfoli-web/internal/designfoli"
	"designfoli-web/internal/errorz"
	"designfoli-web/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBackend(t *testing.T, handler http.HandlerFunc) *designfoli.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return designfoli.NewClient(srv.URL + "/")
}

func TestGetConfiguration(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/configuration", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Write([]byte(`{"success":true,"data":{"sections":[{"_id":"s1","section":"Overview","order":1,"fields":[{"_id":"f1","name":"summary","label":"Summary","type":"text","required":true,"order":1}]}],"tags":["UX"]}}`))
	})

	cfg, err := client.GetConfiguration(context.Background(), "tok")

	require.NoError(t, err)
	require.Len(t, cfg.Sections, 1)
	assert.Equal(t, "Overview", cfg.Sections[0].Name)
	assert.Equal(t, "summary", cfg.Sections[0].Fields[0].Name)
	assert.Equal(t, []string{"UX"}, cfg.Tags)
}

func TestGetConfiguration_NoTokenSkipsNetwork(t *testing.T) {
	called := false
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := client.GetConfiguration(context.Background(), "")

	assert.True(t, errors.Is(err, errorz.ErrUnauthorized))
	assert.False(t, called)
}

func TestGetConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		target error
		msg    string
	}{
		{"unauthorized", http.StatusUnauthorized, `{"error":"Invalid token"}`, errorz.ErrUnauthorized, "Invalid token"},
		{"forbidden", http.StatusForbidden, ``, errorz.ErrUnauthorized, "HTTP error! status: 403"},
		{"server error", http.StatusInternalServerError, `oops`, nil, "HTTP error! status: 500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := client.GetConfiguration(context.Background(), "tok")

			require.Error(t, err)
			assert.Equal(t, tt.msg, err.Error())
			if tt.target != nil {
				assert.True(t, errors.Is(err, tt.target))
			}
			status, ok := designfoli.IsAPIError(err)
			assert.True(t, ok)
			assert.Equal(t, tt.status, status)
		})
	}
}

func TestGetConfiguration_MalformedBody(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":`))
	})

	_, err := client.GetConfiguration(context.Background(), "tok")

	assert.Error(t, err)
	_, isAPI := designfoli.IsAPIError(err)
	assert.False(t, isAPI)
}

func TestCreateCaseStudy_SendsMultipart(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/users/profile/addcasestudy", r.URL.Path)
		mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		require.NoError(t, err)
		assert.Equal(t, "multipart/form-data", mediaType)

		reader := multipart.NewReader(r.Body, params["boundary"])
		p, err := reader.NextPart()
		require.NoError(t, err)
		assert.Equal(t, "projectTitle", p.FormName())
		title, _ := io.ReadAll(p)
		assert.Equal(t, "Checkout", string(title))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success":true,"data":{"_id":"cs-9","projectTitle":"Checkout"}}`))
	})

	d := models.NewDraft("u", models.DraftModeCreate)
	d.ProjectTitle = "Checkout"
	payload, err := casestudy.Serialize(context.Background(), d, nil)
	require.NoError(t, err)

	cs, err := client.CreateCaseStudy(context.Background(), "tok", payload)

	require.NoError(t, err)
	assert.Equal(t, "cs-9", cs.ID)
}

func TestUpdateCaseStudy_SuccessFalse(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/users/profile/casestudy/cs-1", r.URL.Path)
		w.Write([]byte(`{"success":false,"error":"Title taken"}`))
	})

	payload := &casestudy.Payload{Body: []byte{}, ContentType: "multipart/form-data; boundary=x"}
	_, err := client.UpdateCaseStudy(context.Background(), "tok", "cs-1", payload)

	require.Error(t, err)
	assert.Equal(t, "Title taken", err.Error())
}

func TestGetCaseStudy_NotFound(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"error":"Case study not found"}`))
	})

	_, err := client.GetCaseStudy(context.Background(), "tok", "missing")

	assert.True(t, errors.Is(err, errorz.ErrNotFound))
	assert.Equal(t, "Case study not found", err.Error())
}

func TestGetPublicCaseStudy_NoAuthHeader(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/users/case-study/cs-2", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{"success":true,"data":{"_id":"cs-2","fieldValues":"{\"summary\":\"hi\"}"}}`))
	})

	cs, err := client.GetPublicCaseStudy(context.Background(), "cs-2")

	require.NoError(t, err)
	values, err := cs.ParseFieldValues()
	require.NoError(t, err)
	assert.Equal(t, "hi", values["summary"])
}

func TestDeleteCaseStudy(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.Write([]byte(`{"success":true}`))
	})

	assert.NoError(t, client.DeleteCaseStudy(context.Background(), "tok", "cs-3"))
}

func TestNetworkFailureIsWrapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	client := designfoli.NewClient(srv.URL)

	_, err := client.GetProfile(context.Background(), "tok")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to execute request")
}

func TestUpdateProfile_JSONWithoutFiles(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var got models.ProfileUpdate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "Ada", got.Profile.DisplayName)
		w.Write([]byte(`{"success":true}`))
	})

	var update models.ProfileUpdate
	update.Profile.DisplayName = "Ada"

	assert.NoError(t, client.UpdateProfile(context.Background(), "tok", update, designfoli.ProfileFiles{}))
}

func TestUpdateProfile_MultipartWithFiles(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Contains(t, r.MultipartForm.Value["profileData"][0], `"displayName":"Ada"`)
		require.Len(t, r.MultipartForm.File["resume"], 1)
		assert.Equal(t, "cv.pdf", r.MultipartForm.File["resume"][0].Filename)
		assert.Empty(t, r.MultipartForm.File["profileImage"])
		w.Write([]byte(`{"success":true}`))
	})

	var update models.ProfileUpdate
	update.Profile.DisplayName = "Ada"
	files := designfoli.ProfileFiles{
		Resume: &designfoli.Upload{Filename: "cv.pdf", ContentType: "application/pdf", Reader: strings.NewReader("%PDF")},
	}

	assert.NoError(t, client.UpdateProfile(context.Background(), "tok", update, files))
}

func TestEntryRoutes(t *testing.T) {
	var seen []string
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method+" "+r.URL.Path)
		w.Write([]byte(`{"success":true}`))
	})
	ctx := context.Background()

	require.NoError(t, client.AddExperience(ctx, "tok", models.Experience{Title: "Designer"}))
	require.NoError(t, client.UpdateEducation(ctx, "tok", "e1", models.Education{Degree: "BA"}))
	require.NoError(t, client.DeleteSkill(ctx, "tok", "s1"))

	assert.Equal(t, []string{
		"POST /api/v1/users/profile/addExperience",
		"PUT /api/v1/users/profile/education/e1",
		"DELETE /api/v1/users/profile/skill/s1",
	}, seen)
}

func TestAccountCalls(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/users/suggest-username":
			w.Write([]byte(`{"success":true,"data":{"suggestions":["ada1","ada2"]}}`))
		case "/api/v1/users/check-username":
			assert.Equal(t, "ada lovelace", r.URL.Query().Get("username"))
			w.Write([]byte(`{"success":true,"data":{"available":true}}`))
		case "/api/v1/users/set-username-and-publish":
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, true, body["isPublished"])
			w.Write([]byte(`{"success":true}`))
		case "/api/v1/auth/email/register":
			assert.Empty(t, r.Header.Get("Authorization"))
			var body models.EmailRegisterRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "ada", body.Name)
			w.Write([]byte(`{"success":true}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	ctx := context.Background()

	suggestions, err := client.SuggestUsername(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, []string{"ada1", "ada2"}, suggestions)

	ok, err := client.CheckUsername(ctx, "tok", "ada lovelace")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, client.SetUsernameAndPublish(ctx, "tok", "ada", "Ada Lovelace"))
	require.NoError(t, client.EmailRegister(ctx, models.EmailRegisterRequest{Email: "a@b.c", Password: "pw", Username: "ada"}))
}
