package api

import (
	"errors"
	"net/http"

	"swiss-virtual-airline/internal/domain/flight"
	reqdto "swiss-virtual-airline/internal/handler/dto/request"
	resdto "swiss-virtual-airline/internal/handler/dto/response"
	"swiss-virtual-airline/internal/handler/httperr"
	"swiss-virtual-airline/internal/pkg/errs"
	"swiss-virtual-airline/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DepartureHandler struct {
	departureUseCase usecase.DepartureUseCase
}

func NewDepartureHandler(departureUseCase usecase.DepartureUseCase) *DepartureHandler {
	return &DepartureHandler{
		departureUseCase: departureUseCase,
	}
}

// @Summary List departures
// @Description Get the current departures board
// @Tags departures
// @Produce json
// @Success 200 {array} flight.Record
// @Router /departures [get]
func (h *DepartureHandler) ListDepartures(c *gin.Context) {
	c.JSON(http.StatusOK, h.departureUseCase.List(c.Request.Context()))
}

// @Summary Replace departures
// @Description Replace the whole departures board with the supplied list
// @Tags departures
// @Accept json
// @Produce json
// @Param request body []flight.Record true "New departures list"
// @Success 200 {object} resdto.ReplaceDeparturesResponse
// @Failure 400 {object} httperr.Response
// @Router /departures [post]
func (h *DepartureHandler) ReplaceDepartures(c *gin.Context) {
	var records []flight.Record
	if err := c.ShouldBindJSON(&records); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrMalformedInput), "Invalid request format")
		return
	}

	count := h.departureUseCase.ReplaceAll(c.Request.Context(), records)
	c.JSON(http.StatusOK, resdto.ReplaceDeparturesResponse{
		Success: true,
		Message: "Flights updated",
		Count:   count,
	})
}

// @Summary Add departure
// @Description Append a single flight to the departures board
// @Tags departures
// @Accept json
// @Produce json
// @Param request body reqdto.AddFlightRequest true "Flight to add"
// @Success 200 {object} resdto.FlightMutationResponse
// @Failure 400 {object} httperr.Response
// @Router /departures/add [post]
func (h *DepartureHandler) AddDeparture(c *gin.Context) {
	var req reqdto.AddFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrMalformedInput), "Invalid request format")
		return
	}

	h.departureUseCase.Add(c.Request.Context(), req.ToRecord())
	c.JSON(http.StatusOK, resdto.FlightMutationResponse{
		Success: true,
		Message: "Flight added",
	})
}

// @Summary Update departure
// @Description Merge-patch a flight identified by flight number
// @Tags departures
// @Accept json
// @Produce json
// @Param flightNumber path string true "Flight number"
// @Param request body reqdto.UpdateFlightRequest true "Fields to update"
// @Success 200 {object} resdto.FlightMutationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /departures/{flightNumber} [put]
func (h *DepartureHandler) UpdateDeparture(c *gin.Context) {
	var req reqdto.UpdateFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrMalformedInput), "Invalid request format")
		return
	}

	_, err := h.departureUseCase.Update(c.Request.Context(), c.Param("flightNumber"), req.ToPatch())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrFlightNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Flight not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FlightMutationResponse{
		Success: true,
		Message: "Flight updated",
	})
}

// @Summary Delete departure
// @Description Remove a flight from the departures board
// @Tags departures
// @Produce json
// @Param flightNumber path string true "Flight number"
// @Success 200 {object} resdto.FlightMutationResponse
// @Failure 404 {object} httperr.Response
// @Router /departures/{flightNumber} [delete]
func (h *DepartureHandler) DeleteDeparture(c *gin.Context) {
	if err := h.departureUseCase.Remove(c.Request.Context(), c.Param("flightNumber")); err != nil {
		switch {
		case errors.Is(err, errs.ErrFlightNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Flight not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FlightMutationResponse{
		Success: true,
		Message: "Flight deleted",
	})
}
