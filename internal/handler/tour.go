package handler

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/daavo03/node-tours-app/internal/domain"
	"github.com/daavo03/node-tours-app/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const maxTourImages = 3

// AliasTopTours rewrites the query to the five best rated and cheapest tours.
func (h *Handler) AliasTopTours(c *ginext.Context) {
	q := c.Request.URL.Query()
	q.Set("limit", "5")
	q.Set("sort", "-ratingsAverage,price")
	q.Set("fields", "name,price,ratingsAverage,summary,difficulty")
	c.Request.URL.RawQuery = q.Encode()
	c.Next()
}

func (h *Handler) GetAllTours(c *ginext.Context) {
	GetAll[domain.Tour](c, h.tourService, h.tourQuery, dto.ToTourResponse)
}

func (h *Handler) GetTour(c *ginext.Context) {
	GetOne[domain.Tour](c, h.tourService, dto.ToTourResponse)
}

func (h *Handler) CreateTour(c *ginext.Context) {
	CreateOne[domain.Tour, domain.TourInput](c, h.tourService, dto.ToTourResponse)
}

func (h *Handler) UpdateTour(c *ginext.Context) {
	UpdateOne[domain.Tour, domain.TourInput](c, h.tourService, dto.ToTourResponse)
}

func (h *Handler) DeleteTour(c *ginext.Context) {
	DeleteOne(c, h.tourService)
}

func (h *Handler) GetTourStats(c *ginext.Context) {
	stats, err := h.tourService.Stats(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{
		"status": "success",
		"data":   ginext.H{"stats": stats},
	})
}

func (h *Handler) GetMonthlyPlan(c *ginext.Context) {
	raw := c.Param("year")
	year, err := strconv.Atoi(raw)
	if err != nil {
		fail(c, &domain.CastError{Field: "year", Value: raw})
		return
	}

	plan, err := h.tourService.MonthlyPlan(c.Request.Context(), year)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{
		"status": "success",
		"data":   ginext.H{"plan": plan},
	})
}

// GetToursWithin serves /tours-within/:distance/center/:latlng/unit/:unit.
func (h *Handler) GetToursWithin(c *ginext.Context) {
	raw := c.Param("distance")
	distance, err := strconv.ParseFloat(raw, 64)
	if err != nil || distance < 0 {
		fail(c, &domain.CastError{Field: "distance", Value: raw})
		return
	}

	lat, lng, err := parseLatLng(c.Param("latlng"))
	if err != nil {
		fail(c, err)
		return
	}

	tours, err := h.tourService.Within(c.Request.Context(), distance, lat, lng, domain.Unit(c.Param("unit")))
	if err != nil {
		fail(c, err)
		return
	}

	out := make([]dto.TourResponse, 0, len(tours))
	for _, t := range tours {
		out = append(out, dto.ToTourResponse(t))
	}

	c.JSON(http.StatusOK, ginext.H{
		"status":  "success",
		"results": len(out),
		"data":    ginext.H{"data": out},
	})
}

func (h *Handler) GetDistances(c *ginext.Context) {
	lat, lng, err := parseLatLng(c.Param("latlng"))
	if err != nil {
		fail(c, err)
		return
	}

	distances, err := h.tourService.Distances(c.Request.Context(), lat, lng, domain.Unit(c.Param("unit")))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{
		"status": "success",
		"data":   ginext.H{"data": distances},
	})
}

// UploadTourImages stores imageCover and up to three images, then points the tour at them.
func (h *Handler) UploadTourImages(c *ginext.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		fail(c, multipartError(err))
		return
	}

	covers, images := form.File["imageCover"], form.File["images"]
	if len(covers) > 1 || len(images) > maxTourImages {
		fail(c, domain.NewInvalidInput(fmt.Sprintf("Upload at most 1 imageCover and %d images", maxTourImages)))
		return
	}

	if _, err := h.tourService.Get(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}

	stamp := h.now().UnixMilli()
	var in domain.TourInput

	if len(covers) == 1 {
		name, err := h.uploader.SaveImage(covers[0], "tours", fmt.Sprintf("tour-%s-%d-cover", id, stamp))
		if err != nil {
			fail(c, err)
			return
		}
		in.ImageCover = &name
	}

	if len(images) > 0 {
		in.Images, err = h.saveImages(images, id, stamp)
		if err != nil {
			fail(c, err)
			return
		}
	}

	tour, err := h.tourService.Update(c.Request.Context(), id, in)
	if err != nil {
		fail(c, err)
		return
	}

	success(c, http.StatusOK, dto.ToTourResponse(tour))
}

func (h *Handler) saveImages(files []*multipart.FileHeader, id string, stamp int64) ([]string, error) {
	names := make([]string, 0, len(files))
	for i, fh := range files {
		name, err := h.uploader.SaveImage(fh, "tours", fmt.Sprintf("tour-%s-%d-%d", id, stamp, i+1))
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

func parseLatLng(raw string) (float64, float64, error) {
	latRaw, lngRaw, ok := strings.Cut(raw, ",")
	if !ok {
		return 0, 0, domain.ErrInvalidLatLng
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(latRaw), 64)
	if err != nil || lat < -90 || lat > 90 {
		return 0, 0, domain.ErrInvalidLatLng
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngRaw), 64)
	if err != nil || lng < -180 || lng > 180 {
		return 0, 0, domain.ErrInvalidLatLng
	}
	return lat, lng, nil
}
