package api

import (
	"errors"
	"net/http"

	reqdto "swiss-virtual-airline/internal/handler/dto/request"
	resdto "swiss-virtual-airline/internal/handler/dto/response"
	"swiss-virtual-airline/internal/handler/httperr"
	"swiss-virtual-airline/internal/pkg/errs"
	"swiss-virtual-airline/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BotHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBotHandler(bookingUseCase usecase.BookingUseCase) *BotHandler {
	return &BotHandler{
		bookingUseCase: bookingUseCase,
	}
}

// @Summary Bot booking
// @Description Book a flight on behalf of a Discord user via the companion bot
// @Tags bot
// @Accept json
// @Produce json
// @Param request body reqdto.BotBookingRequest true "Bot booking request"
// @Success 200 {object} resdto.BookingMutationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bot/book [post]
func (h *BotHandler) CreateBotBooking(c *gin.Context) {
	var req reqdto.BotBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrMalformedInput), "Invalid request format")
		return
	}

	b, err := h.bookingUseCase.CreateForBot(c.Request.Context(), req.BotToken, req.FlightNumber, req.DiscordID, req.Username)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidBotToken):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid bot token")
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
