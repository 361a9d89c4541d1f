package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"html/template"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/daavo03/node-tours-app/internal/domain"
	hmocks "github.com/daavo03/node-tours-app/internal/handler/mocks"
	"github.com/daavo03/node-tours-app/internal/middleware"
	"github.com/daavo03/node-tours-app/internal/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const (
	tourUID    = "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d"
	userUID    = "1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed"
	reviewUID  = "6ec0bd7f-11c0-43da-975e-2a8ad9ebae0b"
	bookingUID = "3f9b1c1e-8a4b-4e0c-9f2d-1a2b3c4d5e6f"
)

const testTemplates = `{{define "overview.html"}}{{.title}}:{{len .tours}}{{end}}` +
	`{{define "tour.html"}}{{.title}}{{end}}` +
	`{{define "account.html"}}{{.title}}:{{.user.Name}}{{end}}` +
	`{{define "error.html"}}{{.msg}}{{end}}`

type testDeps struct {
	tours    *hmocks.MockTourSvc
	users    *hmocks.MockUserSvc
	auth     *hmocks.MockAuthSvc
	reviews  *hmocks.MockReviewSvc
	bookings *hmocks.MockBookingSvc
	uploader *hmocks.MockUploader
	invoices *hmocks.MockInvoiceRenderer
	handler  *Handler
}

// setupRouter wires the handlers behind the error middleware. When actor is
// set it is treated as the authenticated user of every request.
func setupRouter(t *testing.T, actor *domain.User) (*testDeps, http.Handler) {
	t.Helper()
	d := &testDeps{
		tours:    hmocks.NewMockTourSvc(t),
		users:    hmocks.NewMockUserSvc(t),
		auth:     hmocks.NewMockAuthSvc(t),
		reviews:  hmocks.NewMockReviewSvc(t),
		bookings: hmocks.NewMockBookingSvc(t),
		uploader: hmocks.NewMockUploader(t),
		invoices: hmocks.NewMockInvoiceRenderer(t),
	}
	h := NewHandler(d.tours, d.users, d.auth, d.reviews, d.bookings, d.uploader, d.invoices,
		Config{CookieTTL: 90 * 24 * time.Hour})
	h.now = func() time.Time { return time.UnixMilli(1700000000000) }
	d.handler = h

	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)

	r := ginext.New("test")
	r.SetHTMLTemplate(template.Must(template.New("views").Parse(testTemplates)))
	r.Use(middleware.ErrorHandler(log, true))
	r.Use(func(c *ginext.Context) {
		if actor != nil {
			c.Request = c.Request.WithContext(domain.ContextWithUser(c.Request.Context(), actor))
		}
		c.Next()
	})

	r.GET("/", h.Overview)
	r.GET("/tour/:slug", h.TourPage)
	r.GET("/my-tours", h.MyToursPage)
	r.POST("/submit-user-data", h.SubmitUserData)

	api := r.Group("/api/v1")
	{
		api.GET("/tours/top-5-cheap", h.AliasTopTours, h.GetAllTours)
		api.GET("/tours", h.GetAllTours)
		api.POST("/tours", h.CreateTour)
		api.GET("/tours/:id", h.GetTour)
		api.PATCH("/tours/:id/images", h.UploadTourImages)
		api.DELETE("/tours/:id", h.DeleteTour)
		api.GET("/tours/monthly-plan/:year", h.GetMonthlyPlan)
		api.GET("/tours/tours-within/:distance/center/:latlng/unit/:unit", h.GetToursWithin)
		api.GET("/tours/:id/reviews", h.GetAllReviews)
		api.POST("/tours/:id/reviews", h.CreateReview)

		api.POST("/users/signup", h.Signup)
		api.POST("/users/login", h.Login)
		api.GET("/users/logout", h.Logout)
		api.POST("/users/forgotPassword", h.ForgotPassword)
		api.GET("/users/me", h.GetMe)
		api.PATCH("/users/updateMe", h.UpdateMe)
		api.POST("/users", h.CreateUser)

		api.GET("/bookings/checkout-session/:tourId", h.GetCheckoutSession)
		api.GET("/bookings/:id/invoice", h.GetInvoice)
	}

	return d, r
}

func serve(r http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(raw)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func sampleTour() *domain.Tour {
	return &domain.Tour{
		ID:             tourUID,
		Name:           "The Forest Hiker",
		Slug:           "the-forest-hiker",
		Duration:       5,
		MaxGroupSize:   25,
		Difficulty:     domain.DifficultyEasy,
		RatingsAverage: 4.7,
		Price:          397,
		Summary:        "Breathtaking hike through the Canadian Banff National Park",
		ImageCover:     "tour-1-cover.jpg",
	}
}

// --- Tours ---

func TestHandler_GetAllTours(t *testing.T) {
	d, r := setupRouter(t, nil)

	d.tours.EXPECT().List(mock.Anything, mock.MatchedBy(func(q *query.Query) bool {
		return q.Page == 2 && q.Limit == 3
	})).Return([]*domain.Tour{sampleTour()}, nil)

	w := serve(r, http.MethodGet, "/api/v1/tours?page=2&limit=3&fields=name,price", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "success", body["status"])
	assert.EqualValues(t, 1, body["results"])

	items := body["data"].(map[string]any)["data"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, map[string]any{
		"id":    tourUID,
		"name":  "The Forest Hiker",
		"price": 397.0,
	}, items[0])
}

func TestHandler_AliasTopTours(t *testing.T) {
	d, r := setupRouter(t, nil)

	d.tours.EXPECT().List(mock.Anything, mock.MatchedBy(func(q *query.Query) bool {
		return q.Limit == 5 &&
			len(q.Sort) == 2 &&
			q.Sort[0] == query.SortField{Field: "ratingsAverage", Desc: true} &&
			q.Sort[1] == query.SortField{Field: "price"} &&
			len(q.Projection.Fields) == 5
	})).Return([]*domain.Tour{sampleTour()}, nil)

	w := serve(r, http.MethodGet, "/api/v1/tours/top-5-cheap", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	item := decode(t, w)["data"].(map[string]any)["data"].([]any)[0].(map[string]any)
	assert.NotContains(t, item, "slug")
	assert.Equal(t, "easy", item["difficulty"])
}

func TestHandler_GetAllTours_MixedProjection(t *testing.T) {
	_, r := setupRouter(t, nil)

	w := serve(r, http.MethodGet, "/api/v1/tours?fields=name,-price", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "fail", decode(t, w)["status"])
}

func TestHandler_GetTour(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		d, r := setupRouter(t, nil)
		d.tours.EXPECT().Get(mock.Anything, tourUID).Return(sampleTour(), nil)

		w := serve(r, http.MethodGet, "/api/v1/tours/"+tourUID, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		data := decode(t, w)["data"].(map[string]any)["data"].(map[string]any)
		assert.Equal(t, "the-forest-hiker", data["slug"])
		assert.InDelta(t, 5.0/7, data["durationWeeks"], 1e-9)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, r := setupRouter(t, nil)

		w := serve(r, http.MethodGet, "/api/v1/tours/abc", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid id: abc.", decode(t, w)["message"])
	})

	t.Run("not found", func(t *testing.T) {
		d, r := setupRouter(t, nil)
		d.tours.EXPECT().Get(mock.Anything, tourUID).Return(nil, domain.ErrNotFound)

		w := serve(r, http.MethodGet, "/api/v1/tours/"+tourUID, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "No document found with that ID", decode(t, w)["message"])
	})
}

func TestHandler_CreateTour(t *testing.T) {
	d, r := setupRouter(t, nil)

	d.tours.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in domain.TourInput) bool {
		return in.Name != nil && *in.Name == "The Forest Hiker" && in.Price != nil && *in.Price == 397
	})).Return(sampleTour(), nil)

	w := serve(r, http.MethodPost, "/api/v1/tours", jsonBody(t, map[string]any{
		"name":  "The Forest Hiker",
		"price": 397,
	}))

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decode(t, w)["data"].(map[string]any)["data"].(map[string]any)
	assert.Equal(t, tourUID, data["id"])
}

func TestHandler_CreateTour_BadJSON(t *testing.T) {
	_, r := setupRouter(t, nil)

	w := serve(r, http.MethodPost, "/api/v1/tours", strings.NewReader(`{"name":`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateTour_Validation(t *testing.T) {
	d, r := setupRouter(t, nil)
	d.tours.EXPECT().Create(mock.Anything, mock.Anything).
		Return(nil, domain.NewInvalidInput("name must have at least 10 characters"))

	w := serve(r, http.MethodPost, "/api/v1/tours", jsonBody(t, map[string]any{"name": "Short"}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid input data. name must have at least 10 characters", decode(t, w)["message"])
}

func TestHandler_DeleteTour(t *testing.T) {
	d, r := setupRouter(t, nil)
	d.tours.EXPECT().Delete(mock.Anything, tourUID).Return(nil)

	w := serve(r, http.MethodDelete, "/api/v1/tours/"+tourUID, nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestHandler_GetMonthlyPlan(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		d, r := setupRouter(t, nil)
		d.tours.EXPECT().MonthlyPlan(mock.Anything, 2021).Return([]*domain.MonthlyPlan{
			{Month: 7, NumTourStarts: 3, Tours: []string{"The Sea Explorer"}},
		}, nil)

		w := serve(r, http.MethodGet, "/api/v1/tours/monthly-plan/2021", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		plan := decode(t, w)["data"].(map[string]any)["plan"].([]any)
		assert.Len(t, plan, 1)
	})

	t.Run("bad year", func(t *testing.T) {
		_, r := setupRouter(t, nil)

		w := serve(r, http.MethodGet, "/api/v1/tours/monthly-plan/next", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid year: next.", decode(t, w)["message"])
	})
}

func TestHandler_GetToursWithin(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		d, r := setupRouter(t, nil)
		d.tours.EXPECT().Within(mock.Anything, 250.0, 34.111745, -118.113491, domain.UnitMiles).
			Return([]*domain.Tour{sampleTour()}, nil)

		w := serve(r, http.MethodGet, "/api/v1/tours/tours-within/250/center/34.111745,-118.113491/unit/mi", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 1, decode(t, w)["results"])
	})

	tests := []struct {
		name   string
		latlng string
	}{
		{"missing comma", "34.1"},
		{"not a number", "north,-118.1"},
		{"latitude out of range", "91,10"},
		{"longitude out of range", "10,181"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, r := setupRouter(t, nil)

			w := serve(r, http.MethodGet, "/api/v1/tours/tours-within/250/center/"+tt.latlng+"/unit/mi", nil)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, domain.ErrInvalidLatLng.Error(), decode(t, w)["message"])
		})
	}
}

func TestHandler_UploadTourImages(t *testing.T) {
	d, r := setupRouter(t, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, f := range []struct{ field, name string }{{"imageCover", "cover.jpg"}, {"images", "a.jpg"}, {"images", "b.jpg"}} {
		fw, err := mw.CreateFormFile(f.field, f.name)
		require.NoError(t, err)
		_, err = fw.Write([]byte("\xff\xd8\xff\xe0 jpeg"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	prefix := "tour-" + tourUID + "-1700000000000"
	d.tours.EXPECT().Get(mock.Anything, tourUID).Return(sampleTour(), nil)
	d.uploader.EXPECT().SaveImage(mock.Anything, "tours", prefix+"-cover").Return(prefix+"-cover.jpeg", nil)
	d.uploader.EXPECT().SaveImage(mock.Anything, "tours", prefix+"-1").Return(prefix+"-1.jpeg", nil)
	d.uploader.EXPECT().SaveImage(mock.Anything, "tours", prefix+"-2").Return(prefix+"-2.jpeg", nil)

	d.tours.EXPECT().Update(mock.Anything, tourUID, mock.MatchedBy(func(in domain.TourInput) bool {
		return in.ImageCover != nil && *in.ImageCover == prefix+"-cover.jpeg" &&
			assert.ObjectsAreEqual([]string{prefix + "-1.jpeg", prefix + "-2.jpeg"}, in.Images) &&
			in.Name == nil
	})).Return(sampleTour(), nil)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/tours/"+tourUID+"/images", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_UploadTourImages_UnknownTour(t *testing.T) {
	d, r := setupRouter(t, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("imageCover", "cover.jpg")
	require.NoError(t, err)
	_, err = fw.Write([]byte("\xff\xd8\xff\xe0 jpeg"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	d.tours.EXPECT().Get(mock.Anything, tourUID).Return(nil, domain.ErrNotFound)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/tours/"+tourUID+"/images", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	d.uploader.AssertNotCalled(t, "SaveImage", mock.Anything, mock.Anything, mock.Anything)
}

// --- Reviews ---

func TestHandler_GetAllReviews_NestedUnderTour(t *testing.T) {
	d, r := setupRouter(t, nil)

	d.reviews.EXPECT().List(mock.Anything, mock.MatchedBy(func(q *query.Query) bool {
		for _, f := range q.Filters {
			if f.Field == "tour" && f.Op == query.OpEq && len(f.Values) == 1 && f.Values[0] == tourUID {
				return true
			}
		}
		return false
	})).Return([]*domain.Review{}, nil)

	w := serve(r, http.MethodGet, "/api/v1/tours/"+tourUID+"/reviews", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, decode(t, w)["results"])
}

func TestHandler_GetAllReviews_BadTourID(t *testing.T) {
	_, r := setupRouter(t, nil)

	w := serve(r, http.MethodGet, "/api/v1/tours/xyz/reviews", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateReview_NestedUnderTour(t *testing.T) {
	actor := &domain.User{ID: userUID, Name: "Jonas", Role: domain.RoleUser}
	d, r := setupRouter(t, actor)

	d.reviews.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in domain.ReviewInput) bool {
		return in.Tour != nil && *in.Tour == tourUID &&
			in.User != nil && *in.User == userUID &&
			in.Rating != nil && *in.Rating == 5
	})).Return(&domain.Review{ID: reviewUID, Review: "Amazing!", Rating: 5, TourID: tourUID, UserID: userUID}, nil)

	w := serve(r, http.MethodPost, "/api/v1/tours/"+tourUID+"/reviews", jsonBody(t, map[string]any{
		"review": "Amazing!",
		"rating": 5,
		"user":   "someone-else",
	}))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateReview_RequiresUser(t *testing.T) {
	_, r := setupRouter(t, nil)

	w := serve(r, http.MethodPost, "/api/v1/tours/"+tourUID+"/reviews", jsonBody(t, map[string]any{"rating": 5}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Users & auth ---

func TestHandler_Signup(t *testing.T) {
	d, r := setupRouter(t, nil)

	user := &domain.User{ID: userUID, Name: "Jonas", Email: "jonas@example.com", Role: domain.RoleUser}
	d.auth.EXPECT().Signup(mock.Anything, mock.AnythingOfType("domain.SignupInput"), "http://example.com/me").
		Return(user, "signed.jwt", nil)

	w := serve(r, http.MethodPost, "/api/v1/users/signup", jsonBody(t, map[string]any{
		"name":            "Jonas",
		"email":           "jonas@example.com",
		"password":        "pass1234",
		"passwordConfirm": "pass1234",
	}))

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, "signed.jwt", body["token"])
	userData := body["data"].(map[string]any)["user"].(map[string]any)
	assert.Equal(t, "jonas@example.com", userData["email"])
	assert.NotContains(t, userData, "password")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "jwt", cookies[0].Name)
	assert.Equal(t, "signed.jwt", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 90*24*60*60, cookies[0].MaxAge)
}

func TestHandler_Login_IncorrectCredentials(t *testing.T) {
	d, r := setupRouter(t, nil)
	d.auth.EXPECT().Login(mock.Anything, "jonas@example.com", "wrong").Return(nil, "", domain.ErrIncorrectCredentials)

	w := serve(r, http.MethodPost, "/api/v1/users/login", jsonBody(t, map[string]any{
		"email":    "jonas@example.com",
		"password": "wrong",
	}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Incorrect email or password", decode(t, w)["message"])
	assert.Empty(t, w.Result().Cookies())
}

func TestHandler_Logout(t *testing.T) {
	_, r := setupRouter(t, nil)

	w := serve(r, http.MethodGet, "/api/v1/users/logout", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "loggedout", cookies[0].Value)
	assert.Equal(t, 10, cookies[0].MaxAge)
}

func TestHandler_ForgotPassword(t *testing.T) {
	d, r := setupRouter(t, nil)

	var link string
	d.auth.EXPECT().ForgotPassword(mock.Anything, "jonas@example.com", mock.Anything).
		Run(func(_ context.Context, _ string, resetURL func(token string) string) {
			link = resetURL("abc123")
		}).
		Return(nil)

	w := serve(r, http.MethodPost, "/api/v1/users/forgotPassword", jsonBody(t, map[string]any{"email": "jonas@example.com"}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Token sent to email!", decode(t, w)["message"])
	assert.Equal(t, "http://example.com/api/v1/users/resetPassword/abc123", link)
}

func TestHandler_GetMe(t *testing.T) {
	actor := &domain.User{ID: userUID, Name: "Jonas"}
	d, r := setupRouter(t, actor)
	d.users.EXPECT().Get(mock.Anything, userUID).Return(actor, nil)

	w := serve(r, http.MethodGet, "/api/v1/users/me", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]any)["data"].(map[string]any)
	assert.Equal(t, userUID, data["id"])
}

func TestHandler_UpdateMe(t *testing.T) {
	actor := &domain.User{ID: userUID, Name: "Jonas"}

	t.Run("json", func(t *testing.T) {
		d, r := setupRouter(t, actor)
		d.users.EXPECT().UpdateMe(mock.Anything, userUID, mock.MatchedBy(func(in domain.UserInput) bool {
			return in.Name != nil && *in.Name == "Jonas S."
		})).Return(&domain.User{ID: userUID, Name: "Jonas S."}, nil)

		w := serve(r, http.MethodPatch, "/api/v1/users/updateMe", jsonBody(t, map[string]any{"name": "Jonas S."}))

		assert.Equal(t, http.StatusOK, w.Code)
		user := decode(t, w)["data"].(map[string]any)["user"].(map[string]any)
		assert.Equal(t, "Jonas S.", user["name"])
	})

	t.Run("json photo ignored", func(t *testing.T) {
		d, r := setupRouter(t, actor)
		d.users.EXPECT().UpdateMe(mock.Anything, userUID, mock.MatchedBy(func(in domain.UserInput) bool {
			return in.Photo == nil && in.Name != nil && *in.Name == "Jonas"
		})).Return(&domain.User{ID: userUID, Name: "Jonas", Photo: "default.jpg"}, nil)

		w := serve(r, http.MethodPatch, "/api/v1/users/updateMe", jsonBody(t, map[string]any{
			"name":  "Jonas",
			"photo": "../../etc/passwd",
		}))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("password rejected", func(t *testing.T) {
		_, r := setupRouter(t, actor)

		w := serve(r, http.MethodPatch, "/api/v1/users/updateMe", jsonBody(t, map[string]any{
			"password":        "newpass123",
			"passwordConfirm": "newpass123",
		}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domain.ErrPasswordRoute.Error(), decode(t, w)["message"])
	})

	t.Run("photo upload", func(t *testing.T) {
		d, r := setupRouter(t, actor)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("name", "Jonas"))
		fw, err := mw.CreateFormFile("photo", "me.png")
		require.NoError(t, err)
		_, err = fw.Write([]byte("\x89PNG\r\n\x1a\n"))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		name := "user-" + userUID + "-1700000000000"
		d.uploader.EXPECT().SaveImage(mock.Anything, "users", name).Return(name+".png", nil)
		d.users.EXPECT().UpdateMe(mock.Anything, userUID, mock.MatchedBy(func(in domain.UserInput) bool {
			return in.Photo != nil && *in.Photo == name+".png" && in.Name != nil
		})).Return(&domain.User{ID: userUID, Name: "Jonas", Photo: name + ".png"}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/api/v1/users/updateMe", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("form password rejected before upload", func(t *testing.T) {
		_, r := setupRouter(t, actor)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("password", "newpass123"))
		fw, err := mw.CreateFormFile("photo", "me.png")
		require.NoError(t, err)
		_, err = fw.Write([]byte("\x89PNG\r\n\x1a\n"))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPatch, "/api/v1/users/updateMe", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domain.ErrPasswordRoute.Error(), decode(t, w)["message"])
	})

	t.Run("not an image", func(t *testing.T) {
		d, r := setupRouter(t, actor)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		fw, err := mw.CreateFormFile("photo", "notes.txt")
		require.NoError(t, err)
		_, err = fw.Write([]byte("plain text"))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		d.uploader.EXPECT().SaveImage(mock.Anything, "users", mock.Anything).Return("", domain.ErrNotAnImage)

		req := httptest.NewRequest(http.MethodPatch, "/api/v1/users/updateMe", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domain.ErrNotAnImage.Error(), decode(t, w)["message"])
	})
}

func TestHandler_CreateUser_NotDefined(t *testing.T) {
	_, r := setupRouter(t, nil)

	w := serve(r, http.MethodPost, "/api/v1/users", jsonBody(t, map[string]any{"name": "x"}))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, domain.ErrRouteNotDefined.Error(), decode(t, w)["message"])
}

// --- Bookings ---

func TestHandler_GetCheckoutSession(t *testing.T) {
	actor := &domain.User{ID: userUID, Email: "jonas@example.com"}
	d, r := setupRouter(t, actor)

	d.bookings.EXPECT().CheckoutSession(mock.Anything, tourUID, actor, "http://example.com").
		Return(&domain.CheckoutSession{ID: "cs_1", SuccessURL: "http://example.com/?session=tok"}, nil)

	w := serve(r, http.MethodGet, "/api/v1/bookings/checkout-session/"+tourUID, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	session := decode(t, w)["session"].(map[string]any)
	assert.Equal(t, "cs_1", session["id"])
}

func TestHandler_GetInvoice(t *testing.T) {
	actor := &domain.User{ID: userUID}
	d, r := setupRouter(t, actor)

	inv := &domain.Invoice{Number: "INV-3F9B1C1E", TourName: "The Forest Hiker", Price: 397}
	d.bookings.EXPECT().Invoice(mock.Anything, bookingUID).Return(inv, nil)
	d.invoices.EXPECT().Render(mock.Anything, inv).RunAndReturn(func(w io.Writer, _ *domain.Invoice) error {
		_, err := w.Write([]byte("%PDF-1.3"))
		return err
	})

	w := serve(r, http.MethodGet, "/api/v1/bookings/"+bookingUID+"/invoice", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="INV-3F9B1C1E.pdf"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.3", w.Body.String())
}

func TestHandler_GetInvoice_Forbidden(t *testing.T) {
	d, r := setupRouter(t, &domain.User{ID: userUID})
	d.bookings.EXPECT().Invoice(mock.Anything, bookingUID).Return(nil, domain.ErrForbidden)

	w := serve(r, http.MethodGet, "/api/v1/bookings/"+bookingUID+"/invoice", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- Views ---

func TestHandler_Overview(t *testing.T) {
	d, r := setupRouter(t, nil)
	d.tours.EXPECT().List(mock.Anything, mock.Anything).Return([]*domain.Tour{sampleTour(), sampleTour()}, nil)

	w := serve(r, http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "All Tours:2", w.Body.String())
}

func TestHandler_Overview_CompletesCheckout(t *testing.T) {
	d, r := setupRouter(t, nil)
	d.bookings.EXPECT().CompleteCheckout(mock.Anything, "tok").Return(&domain.Booking{ID: bookingUID}, nil)

	w := serve(r, http.MethodGet, "/?session=tok", nil)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestHandler_TourPage(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		d, r := setupRouter(t, nil)
		d.tours.EXPECT().GetBySlug(mock.Anything, "the-forest-hiker").Return(sampleTour(), nil)

		w := serve(r, http.MethodGet, "/tour/the-forest-hiker", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "The Forest Hiker Tour", w.Body.String())
	})

	t.Run("missing", func(t *testing.T) {
		d, r := setupRouter(t, nil)
		d.tours.EXPECT().GetBySlug(mock.Anything, "nope").Return(nil, domain.ErrTourNotFound)

		w := serve(r, http.MethodGet, "/tour/nope", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "There is no tour with that name.", w.Body.String())
	})
}

func TestHandler_MyToursPage(t *testing.T) {
	d, r := setupRouter(t, &domain.User{ID: userUID})
	d.tours.EXPECT().ListBooked(mock.Anything, userUID).Return([]*domain.Tour{sampleTour()}, nil)

	w := serve(r, http.MethodGet, "/my-tours", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "My Tours:1", w.Body.String())
}

func TestHandler_SubmitUserData(t *testing.T) {
	d, r := setupRouter(t, &domain.User{ID: userUID, Name: "Jonas"})
	d.users.EXPECT().UpdateMe(mock.Anything, userUID, mock.MatchedBy(func(in domain.UserInput) bool {
		return *in.Name == "Jonas S." && *in.Email == "jonas@example.com"
	})).Return(&domain.User{ID: userUID, Name: "Jonas S."}, nil)

	req := httptest.NewRequest(http.MethodPost, "/submit-user-data",
		strings.NewReader("name=Jonas+S.&email=jonas%40example.com"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Your account:Jonas S.", w.Body.String())
}
