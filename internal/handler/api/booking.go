package api

import (
	"errors"
	"net/http"

	reqdto "swiss-virtual-airline/internal/handler/dto/request"
	resdto "swiss-virtual-airline/internal/handler/dto/response"
	"swiss-virtual-airline/internal/handler/httperr"
	"swiss-virtual-airline/internal/handler/middleware"
	"swiss-virtual-airline/internal/pkg/errs"
	"swiss-virtual-airline/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

// @Summary Create booking
// @Description Book a flight for the authenticated user
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Flight to book"
// @Success 200 {object} resdto.BookingMutationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.ErrInvalidSession, "Internal server error")
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrMalformedInput), "flightNumber is required")
		return
	}

	b, err := h.bookingUseCase.Create(c.Request.Context(), identity, req.FlightNumber)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrFlightNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Flight not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.BookingMutationResponse{
		Success: true,
		Message: "Booking confirmed",
		Booking: resdto.FromBooking(b),
	})
}

// @Summary List all bookings
// @Description Get every booking in creation order
// @Tags bookings
// @Produce json
// @Success 200 {array} resdto.BookingResponse
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromBookings(h.bookingUseCase.ListAll(c.Request.Context())))
}

// @Summary List user bookings
// @Description Get the bookings of one user
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} httperr.Response
// @Router /bookings/{userId} [get]
func (h *BookingHandler) ListUserBookings(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromBookings(h.bookingUseCase.ListForUser(c.Request.Context(), c.Param("userId"))))
}

// @Summary Cancel booking
// @Description Delete a booking owned by the authenticated user
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{bookingId} [delete]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.ErrInvalidSession, "Internal server error")
		return
	}

	if err := h.bookingUseCase.Cancel(c.Request.Context(), c.Param("bookingId"), identity); err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found")
		case errors.Is(err, errs.ErrNotBookingOwner):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not your booking")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.NewMessageResponse("Booking cancelled"))
}
