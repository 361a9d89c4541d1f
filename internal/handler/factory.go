package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/daavo03/node-tours-app/internal/domain"
	"github.com/daavo03/node-tours-app/internal/query"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type Lister[T any] interface {
	List(ctx context.Context, q *query.Query) ([]*T, error)
}

type Getter[T any] interface {
	Get(ctx context.Context, id string) (*T, error)
}

type Creator[T, In any] interface {
	Create(ctx context.Context, in In) (*T, error)
}

type Updater[T, In any] interface {
	Update(ctx context.Context, id string, in In) (*T, error)
}

type Deleter interface {
	Delete(ctx context.Context, id string) error
}

// Scope narrows a list query using the request, e.g. from a parent route parameter.
type Scope func(c *ginext.Context, q *query.Query) error

// Prepare adjusts decoded input before it reaches the service.
type Prepare[In any] func(c *ginext.Context, in *In) error

// ParamScope filters field by the uuid in route parameter param, when present.
func ParamScope(param, field string) Scope {
	return func(c *ginext.Context, q *query.Query) error {
		v := c.Param(param)
		if v == "" {
			return nil
		}
		if _, err := uuid.Parse(v); err != nil {
			return &domain.CastError{Field: param, Value: v}
		}
		q.Where(field, v)
		return nil
	}
}

func GetAll[T, R any](c *ginext.Context, svc Lister[T], parser *query.Parser, render func(*T) R, scopes ...Scope) {
	q, err := parser.Parse(c.Request.URL.Query())
	if err != nil {
		fail(c, err)
		return
	}
	for _, scope := range scopes {
		if err = scope(c, q); err != nil {
			fail(c, err)
			return
		}
	}

	items, err := svc.List(c.Request.Context(), q)
	if err != nil {
		fail(c, err)
		return
	}

	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, render(item))
	}

	data, err := query.Project(out, q.Projection)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{
		"status":  "success",
		"results": len(out),
		"data":    ginext.H{"data": data},
	})
}

func GetOne[T, R any](c *ginext.Context, svc Getter[T], render func(*T) R) {
	id, err := idParam(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	item, err := svc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	success(c, http.StatusOK, render(item))
}

func CreateOne[T, In, R any](c *ginext.Context, svc Creator[T, In], render func(*T) R, prepare ...Prepare[In]) {
	var in In
	if err := bindJSON(c, &in); err != nil {
		fail(c, err)
		return
	}
	for _, p := range prepare {
		if err := p(c, &in); err != nil {
			fail(c, err)
			return
		}
	}

	item, err := svc.Create(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}

	success(c, http.StatusCreated, render(item))
}

func UpdateOne[T, In, R any](c *ginext.Context, svc Updater[T, In], render func(*T) R, prepare ...Prepare[In]) {
	id, err := idParam(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	var in In
	if err = bindJSON(c, &in); err != nil {
		fail(c, err)
		return
	}
	for _, p := range prepare {
		if err = p(c, &in); err != nil {
			fail(c, err)
			return
		}
	}

	item, err := svc.Update(c.Request.Context(), id, in)
	if err != nil {
		fail(c, err)
		return
	}

	success(c, http.StatusOK, render(item))
}

func DeleteOne(c *ginext.Context, svc Deleter) {
	id, err := idParam(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	if err = svc.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func success(c *ginext.Context, status int, data any) {
	c.JSON(status, ginext.H{
		"status": "success",
		"data":   ginext.H{"data": data},
	})
}

// fail hands err to the error middleware.
func fail(c *ginext.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func idParam(c *ginext.Context, name string) (string, error) {
	v := c.Param(name)
	if _, err := uuid.Parse(v); err != nil {
		return "", &domain.CastError{Field: name, Value: v}
	}
	return v, nil
}

func bindJSON(c *ginext.Context, v any) error {
	if err := c.ShouldBindJSON(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return domain.ErrBodyTooLarge
		}
		return domain.NewInvalidInput(err.Error())
	}
	return nil
}

func currentUser(c *ginext.Context) (*domain.User, error) {
	u, ok := domain.UserFromContext(c.Request.Context())
	if !ok {
		return nil, domain.ErrNotLoggedIn
	}
	return u, nil
}

// baseURL is the public origin of the request.
func baseURL(c *ginext.Context) string {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}
