package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "swiss-virtual-airline/internal/handler/dto/request"
	resdto "swiss-virtual-airline/internal/handler/dto/response"
	"swiss-virtual-airline/internal/handler/httperr"
	"swiss-virtual-airline/internal/handler/middleware"
	"swiss-virtual-airline/internal/pkg/errs"
	"swiss-virtual-airline/internal/usecase"

	"github.com/gin-gonic/gin"
)

type RewardsHandler struct {
	rewardsUseCase usecase.RewardsUseCase
}

func NewRewardsHandler(rewardsUseCase usecase.RewardsUseCase) *RewardsHandler {
	return &RewardsHandler{
		rewardsUseCase: rewardsUseCase,
	}
}

// @Summary Get rewards account
// @Description Get a user's points balance, tier and progress to the next tier
// @Tags rewards
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {object} resdto.RewardsAccountResponse
// @Failure 401 {object} httperr.Response
// @Router /rewards/{userId} [get]
func (h *RewardsHandler) GetAccount(c *gin.Context) {
	status := h.rewardsUseCase.GetAccount(c.Request.Context(), c.Param("userId"))
	c.JSON(http.StatusOK, resdto.RewardsAccountResponse{
		Success:  true,
		Account:  resdto.FromAccount(status.Account),
		Tier:     status.Tier,
		Progress: resdto.FromTierProgress(status.Progress),
	})
}

// @Summary Award points
// @Description Adjust a user's points balance (admin only)
// @Tags rewards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AwardPointsRequest true "Award request"
// @Success 200 {object} resdto.AwardResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /rewards/award [post]
func (h *RewardsHandler) AwardPoints(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.ErrInvalidSession, "Internal server error")
		return
	}

	var req reqdto.AwardPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrMalformedInput), "userId and points are required")
		return
	}

	outcome, err := h.rewardsUseCase.AwardPoints(c.Request.Context(), identity.ID, req.UserID, req.Points, req.FlightCompletion)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotAuthorized):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Admin privileges required")
		case errors.Is(err, errs.ErrNegativePointsBalance):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Points balance cannot go negative")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.AwardResponse{
		Success:     true,
		Message:     "Points awarded",
		Account:     resdto.FromAccount(outcome.Account),
		TierChanged: outcome.TierChanged,
		OldTier:     outcome.OldTier,
		NewTier:     outcome.NewTier,
	})
}

// @Summary Complete flight
// @Description Award points for a completed booking, once per booking
// @Tags rewards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CompleteFlightRequest true "Completion request"
// @Success 200 {object} resdto.CompleteFlightResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rewards/complete-flight [post]
func (h *RewardsHandler) CompleteFlight(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.ErrInvalidSession, "Internal server error")
		return
	}

	var req reqdto.CompleteFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrMalformedInput), "bookingId is required")
		return
	}

	outcome, err := h.rewardsUseCase.CompleteFlight(c.Request.Context(), identity, req.BookingID, req.Points)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found")
		case errors.Is(err, errs.ErrPointsAlreadyAwarded):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Points already awarded for this booking")
		case errors.Is(err, errs.ErrInvalidPointsAmount):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Points must be positive")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.CompleteFlightResponse{
		Success:      true,
		Message:      "Flight completed",
		PointsEarned: outcome.PointsEarned,
		Account:      resdto.FromAccount(outcome.Account),
		TierChanged:  outcome.TierChanged,
		OldTier:      outcome.OldTier,
		NewTier:      outcome.NewTier,
	})
}

// @Summary Leaderboard
// @Description Get the rewards leaderboard, sorted by points descending
// @Tags rewards
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Success 200 {object} resdto.LeaderboardResponse
// @Router /rewards/leaderboard [get]
func (h *RewardsHandler) Leaderboard(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	c.JSON(http.StatusOK, resdto.FromLeaderboard(h.rewardsUseCase.Leaderboard(c.Request.Context(), page)))
}

// @Summary Tier table
// @Description Get the loyalty tier definitions
// @Tags rewards
// @Produce json
// @Success 200 {object} resdto.TiersResponse
// @Router /rewards/tiers [get]
func (h *RewardsHandler) Tiers(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.TiersResponse{
		Success: true,
		Tiers:   h.rewardsUseCase.Tiers(c.Request.Context()),
	})
}
