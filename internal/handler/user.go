package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/daavo03/node-tours-app/internal/domain"
	"github.com/daavo03/node-tours-app/internal/handler/dto"
	"github.com/gin-gonic/gin"
	"github.com/wb-go/wbf/ginext"
)

const (
	cookieName    = "jwt"
	loggedOut     = "loggedout"
	logoutSeconds = 10
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type updatePasswordRequest struct {
	PasswordCurrent string `json:"passwordCurrent"`
	domain.PasswordInput
}

type updateMeRequest struct {
	domain.UserInput
	Password        *string `json:"password"`
	PasswordConfirm *string `json:"passwordConfirm"`
}

func (h *Handler) Signup(c *ginext.Context) {
	var in domain.SignupInput
	if err := bindJSON(c, &in); err != nil {
		fail(c, err)
		return
	}

	user, token, err := h.authService.Signup(c.Request.Context(), in, baseURL(c)+"/me")
	if err != nil {
		fail(c, err)
		return
	}

	h.sendToken(c, http.StatusCreated, user, token)
}

func (h *Handler) Login(c *ginext.Context) {
	var req loginRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	h.sendToken(c, http.StatusOK, user, token)
}

func (h *Handler) Logout(c *ginext.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookieName, loggedOut, logoutSeconds, "/", "", h.secureCookie(c), true)
	c.JSON(http.StatusOK, ginext.H{"status": "success"})
}

func (h *Handler) ForgotPassword(c *ginext.Context) {
	var req forgotPasswordRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	base := baseURL(c)
	err := h.authService.ForgotPassword(c.Request.Context(), req.Email, func(token string) string {
		return base + "/api/v1/users/resetPassword/" + token
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{
		"status":  "success",
		"message": "Token sent to email!",
	})
}

func (h *Handler) ResetPassword(c *ginext.Context) {
	var in domain.PasswordInput
	if err := bindJSON(c, &in); err != nil {
		fail(c, err)
		return
	}

	user, token, err := h.authService.ResetPassword(c.Request.Context(), c.Param("token"), in)
	if err != nil {
		fail(c, err)
		return
	}

	h.sendToken(c, http.StatusOK, user, token)
}

func (h *Handler) UpdateMyPassword(c *ginext.Context) {
	actor, err := currentUser(c)
	if err != nil {
		fail(c, err)
		return
	}

	var req updatePasswordRequest
	if err = bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	user, token, err := h.authService.UpdatePassword(c.Request.Context(), actor.ID, req.PasswordCurrent, req.PasswordInput)
	if err != nil {
		fail(c, err)
		return
	}

	h.sendToken(c, http.StatusOK, user, token)
}

// GetMe serves the current user through the regular user lookup.
func (h *Handler) GetMe(c *ginext.Context) {
	actor, err := currentUser(c)
	if err != nil {
		fail(c, err)
		return
	}

	c.Params = append(c.Params, gin.Param{Key: "id", Value: actor.ID})
	h.GetUser(c)
}

// UpdateMe accepts JSON or a multipart form with an optional photo.
func (h *Handler) UpdateMe(c *ginext.Context) {
	actor, err := currentUser(c)
	if err != nil {
		fail(c, err)
		return
	}

	var req updateMeRequest
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		req, err = h.updateMeForm(c, actor)
	} else {
		err = bindJSON(c, &req)
		// photo is only set from an uploaded file
		req.Photo = nil
	}
	if err != nil {
		fail(c, err)
		return
	}

	if req.Password != nil || req.PasswordConfirm != nil {
		fail(c, domain.ErrPasswordRoute)
		return
	}

	user, err := h.userService.UpdateMe(c.Request.Context(), actor.ID, req.UserInput)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{
		"status": "success",
		"data":   ginext.H{"user": dto.ToUserResponse(user)},
	})
}

func (h *Handler) updateMeForm(c *ginext.Context, actor *domain.User) (updateMeRequest, error) {
	var req updateMeRequest

	form, err := c.MultipartForm()
	if err != nil {
		return req, multipartError(err)
	}

	if v, ok := formValue(form.Value, "name"); ok {
		req.Name = &v
	}
	if v, ok := formValue(form.Value, "email"); ok {
		req.Email = &v
	}
	if v, ok := formValue(form.Value, "password"); ok {
		req.Password = &v
	}
	if v, ok := formValue(form.Value, "passwordConfirm"); ok {
		req.PasswordConfirm = &v
	}
	if req.Password != nil || req.PasswordConfirm != nil {
		return req, domain.ErrPasswordRoute
	}

	if files := form.File["photo"]; len(files) > 0 {
		name := fmt.Sprintf("user-%s-%d", actor.ID, h.now().UnixMilli())
		photo, err := h.uploader.SaveImage(files[0], "users", name)
		if err != nil {
			return req, err
		}
		req.Photo = &photo
	}

	return req, nil
}

func (h *Handler) DeleteMe(c *ginext.Context) {
	actor, err := currentUser(c)
	if err != nil {
		fail(c, err)
		return
	}

	if err = h.userService.DeleteMe(c.Request.Context(), actor.ID); err != nil {
		fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) GetAllUsers(c *ginext.Context) {
	GetAll[domain.User](c, h.userService, h.query, dto.ToUserResponse)
}

func (h *Handler) GetUser(c *ginext.Context) {
	GetOne[domain.User](c, h.userService, dto.ToUserResponse)
}

func (h *Handler) UpdateUser(c *ginext.Context) {
	UpdateOne[domain.User, domain.UserInput](c, h.userService, dto.ToUserResponse)
}

func (h *Handler) DeleteUser(c *ginext.Context) {
	DeleteOne(c, h.userService)
}

// CreateUser is not available; accounts are created through signup.
func (h *Handler) CreateUser(c *ginext.Context) {
	fail(c, domain.ErrRouteNotDefined)
}

func (h *Handler) sendToken(c *ginext.Context, status int, user *domain.User, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookieName, token, int(h.cfg.CookieTTL.Seconds()), "/", "", h.secureCookie(c), true)

	c.JSON(status, ginext.H{
		"status": "success",
		"token":  token,
		"data":   ginext.H{"user": dto.ToUserResponse(user)},
	})
}

func (h *Handler) secureCookie(c *ginext.Context) bool {
	return h.cfg.Production || c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https"
}

func formValue(values map[string][]string, key string) (string, bool) {
	v := values[key]
	if len(v) == 0 {
		return "", false
	}
	return v[len(v)-1], true
}

func multipartError(err error) error {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return domain.ErrBodyTooLarge
	case errors.Is(err, http.ErrNotMultipart):
		return domain.NewInvalidInput("Expected a multipart form")
	default:
		return domain.NewInvalidInput(err.Error())
	}
}
