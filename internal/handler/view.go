package handler

import (
	"net/http"
	"strings"

	"github.com/daavo03/node-tours-app/internal/domain"
	"github.com/daavo03/node-tours-app/internal/query"
	"github.com/wb-go/wbf/ginext"
)

// Overview renders all tours. A request carrying ?session= comes back from
// checkout: the booking is recorded and the client redirected to a clean URL.
func (h *Handler) Overview(c *ginext.Context) {
	if token := c.Query("session"); token != "" {
		if _, err := h.bookingService.CompleteCheckout(c.Request.Context(), token); err != nil {
			fail(c, err)
			return
		}
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	tours, err := h.tourService.List(c.Request.Context(), &query.Query{Page: query.DefaultPage, Limit: query.DefaultLimit})
	if err != nil {
		fail(c, err)
		return
	}

	h.render(c, http.StatusOK, "overview.html", ginext.H{
		"title": "All Tours",
		"tours": tours,
	})
}

func (h *Handler) TourPage(c *ginext.Context) {
	tour, err := h.tourService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		fail(c, err)
		return
	}

	h.render(c, http.StatusOK, "tour.html", ginext.H{
		"title": tour.Name + " Tour",
		"tour":  tour,
	})
}

func (h *Handler) LoginPage(c *ginext.Context) {
	h.render(c, http.StatusOK, "login.html", ginext.H{
		"title": "Log into your account",
	})
}

func (h *Handler) AccountPage(c *ginext.Context) {
	h.render(c, http.StatusOK, "account.html", ginext.H{
		"title": "Your account",
	})
}

func (h *Handler) MyToursPage(c *ginext.Context) {
	actor, err := currentUser(c)
	if err != nil {
		fail(c, err)
		return
	}

	tours, err := h.tourService.ListBooked(c.Request.Context(), actor.ID)
	if err != nil {
		fail(c, err)
		return
	}

	h.render(c, http.StatusOK, "overview.html", ginext.H{
		"title": "My Tours",
		"tours": tours,
	})
}

// SubmitUserData handles the account form post.
func (h *Handler) SubmitUserData(c *ginext.Context) {
	actor, err := currentUser(c)
	if err != nil {
		fail(c, err)
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	email := strings.TrimSpace(c.PostForm("email"))
	user, err := h.userService.UpdateMe(c.Request.Context(), actor.ID, domain.UserInput{Name: &name, Email: &email})
	if err != nil {
		fail(c, err)
		return
	}

	h.render(c, http.StatusOK, "account.html", ginext.H{
		"title": "Your account",
		"user":  user,
	})
}

// render exposes the logged-in user to every template as "user".
func (h *Handler) render(c *ginext.Context, status int, name string, data ginext.H) {
	if _, ok := data["user"]; !ok {
		if u, ok := domain.UserFromContext(c.Request.Context()); ok {
			data["user"] = u
		}
	}
	c.HTML(status, name, data)
}
