package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pduarte/aviacao/internal/domain"
	"github.com/pduarte/aviacao/internal/service/checkin"
)

type CheckInHandler struct {
	service checkin.CheckInUseCase
}

type checkInResponse struct {
	Lugar string `json:"lugar"`
}

func NewCheckInHandler(service checkin.CheckInUseCase) *CheckInHandler {
	return &CheckInHandler{service: service}
}

func (h *CheckInHandler) checkIn(c *gin.Context) {
	ticketID, err := strconv.ParseInt(c.Param("bilhete"), 10, 64)
	if err != nil {
		respondError(c, domain.ErrInvalidInput)
		return
	}

	seat, err := h.service.CheckIn(c.Request.Context(), ticketID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, checkInResponse{Lugar: seat})
}
