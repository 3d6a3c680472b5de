package handler

import (
	"net/http"
	"regexp"

	"github.com/labstack/echo/v4"

	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/ports"
)

var trackingNumberRe = regexp.MustCompile(`^[A-Za-z0-9]{1,32}$`)

// trackingParam returns the :tracking_number path parameter, rejecting
// anything that is not alphanumeric.
func trackingParam(c echo.Context) (string, error) {
	tn := c.Param("tracking_number")
	if !trackingNumberRe.MatchString(tn) {
		return "", echo.NewHTTPError(http.StatusBadRequest, "invalid tracking number format")
	}
	return tn, nil
}

type TrackingHandler struct {
	service ports.TrackingService
}

func NewTrackingHandler(service ports.TrackingService) *TrackingHandler {
	return &TrackingHandler{service: service}
}

// Track handles GET /api/track/:tracking_number.
//
// @Summary      Track a package
// @Description  Returns the package with coordinates attached to every resolvable location.
// @Tags         tracking
// @Produce      json
// @Param        tracking_number  path      string  true  "Tracking number (e.g. SC1A2B3C4D5E)"
// @Success      200              {object}  trackingResponse
// @Failure      400              {object}  errorResponse
// @Failure      404              {object}  errorResponse
// @Router       /api/track/{tracking_number} [get]
func (h *TrackingHandler) Track(c echo.Context) error {
	tn, err := trackingParam(c)
	if err != nil {
		return err
	}
	view, err := h.service.Track(c.Request().Context(), tn)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, fromTrackingView(view))
}
