package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/daavo03/node-tours-app/internal/domain"
	"github.com/daavo03/node-tours-app/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) GetCheckoutSession(c *ginext.Context) {
	tourID, err := idParam(c, "tourId")
	if err != nil {
		fail(c, err)
		return
	}

	actor, err := currentUser(c)
	if err != nil {
		fail(c, err)
		return
	}

	session, err := h.bookingService.CheckoutSession(c.Request.Context(), tourID, actor, baseURL(c))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{
		"status":  "success",
		"session": session,
	})
}

func (h *Handler) GetMyBookings(c *ginext.Context) {
	actor, err := currentUser(c)
	if err != nil {
		fail(c, err)
		return
	}

	bookings, err := h.bookingService.ListByUser(c.Request.Context(), actor.ID)
	if err != nil {
		fail(c, err)
		return
	}

	out := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, ginext.H{
		"status":  "success",
		"results": len(out),
		"data":    ginext.H{"data": out},
	})
}

// GetInvoice streams the booking invoice as a PDF attachment.
func (h *Handler) GetInvoice(c *ginext.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	inv, err := h.bookingService.Invoice(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	var buf bytes.Buffer
	if err = h.invoices.Render(&buf, inv); err != nil {
		fail(c, fmt.Errorf("render invoice: %w", err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.pdf"`, inv.Number))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func (h *Handler) GetAllBookings(c *ginext.Context) {
	GetAll[domain.Booking](c, h.bookingService, h.query, dto.ToBookingResponse)
}

func (h *Handler) GetBooking(c *ginext.Context) {
	GetOne[domain.Booking](c, h.bookingService, dto.ToBookingResponse)
}

func (h *Handler) CreateBooking(c *ginext.Context) {
	CreateOne[domain.Booking, domain.BookingInput](c, h.bookingService, dto.ToBookingResponse)
}

func (h *Handler) UpdateBooking(c *ginext.Context) {
	UpdateOne[domain.Booking, domain.BookingInput](c, h.bookingService, dto.ToBookingResponse)
}

func (h *Handler) DeleteBooking(c *ginext.Context) {
	DeleteOne(c, h.bookingService)
}
