package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/domain"
	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/ports"
)

// PackageHandler serves the admin package endpoints.
type PackageHandler struct {
	service ports.PackageService
	log     zerolog.Logger
}

func NewPackageHandler(service ports.PackageService, log zerolog.Logger) *PackageHandler {
	return &PackageHandler{service: service, log: log}
}

// Register handles POST /api/register-package.
//
// @Summary      Register a package
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      registerPackageRequest  true  "Package details"
// @Success      201   {object}  registerPackageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/register-package [post]
func (h *PackageHandler) Register(c echo.Context) error {
	var req registerPackageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.service.Register(c.Request().Context(), toRegisterInput(req))
	if err != nil {
		return err
	}

	username, _, _ := ctxUser(c)
	h.log.Info().Str("tracking_number", res.TrackingNumber).Str("by", username).Msg("package registered via API")

	return c.JSON(http.StatusCreated, registerPackageResponse{
		Message:        "Package registered successfully",
		TrackingNumber: res.TrackingNumber,
		Status:         string(res.Status),
		CreatedAt:      formatTime(res.CreatedAt),
	})
}

// UpdateStatus handles POST /api/update-status.
//
// @Summary      Update a package status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string               false  "Makes retries of the same update a no-op"
// @Param        body             body      updateStatusRequest  true   "Status update"
// @Success      200              {object}  messageResponse
// @Failure      400              {object}  errorResponse
// @Failure      403              {object}  errorResponse
// @Failure      404              {object}  errorResponse
// @Failure      409              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Router       /api/update-status [post]
func (h *PackageHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if req.Override {
		_, role, err := ctxUser(c)
		if err != nil {
			return err
		}
		if role != domain.RoleAdmin {
			return fmt.Errorf("status override by %s: %w", role, domain.ErrForbidden)
		}
	}

	err := h.service.UpdateStatus(c.Request().Context(), ports.UpdateStatusInput{
		TrackingNumber: req.TrackingNumber,
		Status:         req.Status,
		Location:       req.Location,
		Description:    req.Description,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
		Override:       req.Override,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Package status updated successfully"})
}

// List handles GET /api/admin/packages.
//
// @Summary      List packages
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   packageResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/admin/packages [get]
func (h *PackageHandler) List(c echo.Context) error {
	pkgs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]packageResponse, 0, len(pkgs))
	for _, p := range pkgs {
		out = append(out, fromPackage(p))
	}
	return c.JSON(http.StatusOK, out)
}

// UpdateDetails handles PUT /api/admin/package/:tracking_number.
//
// @Summary      Update package details
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        tracking_number  path      string                true  "Tracking number"
// @Param        body             body      updateDetailsRequest  true  "Sections to replace"
// @Success      200              {object}  messageResponse
// @Failure      400              {object}  errorResponse
// @Failure      404              {object}  errorResponse
// @Router       /api/admin/package/{tracking_number} [put]
func (h *PackageHandler) UpdateDetails(c echo.Context) error {
	trackingNumber, err := trackingParam(c)
	if err != nil {
		return err
	}
	var req updateDetailsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.UpdateDetails(c.Request().Context(), trackingNumber, toDetailsPatch(req)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Package updated successfully"})
}

// Delete handles DELETE /api/admin/package/:tracking_number.
//
// @Summary      Delete a package
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        tracking_number  path      string  true  "Tracking number"
// @Success      200              {object}  messageResponse
// @Failure      404              {object}  errorResponse
// @Router       /api/admin/package/{tracking_number} [delete]
func (h *PackageHandler) Delete(c echo.Context) error {
	trackingNumber, err := trackingParam(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), trackingNumber); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Package deleted successfully"})
}
