package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/mmcloughlin/geohash"

	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/domain"
	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/ports"
	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/geo"
)

const (
	maxResolveNames = 20
	geohashChars    = 7
)

// GeoHandler exposes the location resolver to operators.
type GeoHandler struct {
	resolver ports.LocationResolver
}

func NewGeoHandler(resolver ports.LocationResolver) *GeoHandler {
	return &GeoHandler{resolver: resolver}
}

// Resolve handles GET /api/geo/resolve?q=...&q=...
//
// @Summary      Resolve location names
// @Tags         geo
// @Produce      json
// @Security     BearerAuth
// @Param        q    query     []string  true  "Location names"  collectionFormat(multi)
// @Success      200  {object}  resolveResponse
// @Failure      400  {object}  errorResponse
// @Router       /api/geo/resolve [get]
func (h *GeoHandler) Resolve(c echo.Context) error {
	names := c.QueryParams()["q"]
	if len(names) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "at least one q parameter is required")
	}
	if len(names) > maxResolveNames {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("at most %d names per request", maxResolveNames))
	}

	found := h.resolver.ResolveAll(c.Request().Context(), names)
	resp := resolveResponse{
		Resolved:   make(map[string]coordinatesResponse, len(found)),
		Unresolved: []string{},
	}
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		if coord, ok := found[n]; ok {
			resp.Resolved[n] = toCoordinatesResponse(coord)
		} else {
			resp.Unresolved = append(resp.Unresolved, n)
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// Distance handles GET /api/geo/distance?from=...&to=...
// Each endpoint is either "lat,lng" or a location name.
//
// @Summary      Great-circle distance
// @Tags         geo
// @Produce      json
// @Security     BearerAuth
// @Param        from  query     string  true  "lat,lng or location name"
// @Param        to    query     string  true  "lat,lng or location name"
// @Success      200   {object}  distanceResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/geo/distance [get]
func (h *GeoHandler) Distance(c echo.Context) error {
	from, to := c.QueryParam("from"), c.QueryParam("to")
	if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "from and to are required")
	}

	a, err := h.point(c, from)
	if err != nil {
		return err
	}
	b, err := h.point(c, to)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, distanceResponse{
		From:       toCoordinatesResponse(a),
		To:         toCoordinatesResponse(b),
		DistanceKm: geo.DistanceKm(a, b),
	})
}

func (h *GeoHandler) point(c echo.Context, s string) (domain.Coordinate, error) {
	if coord, ok, err := ParsePoint(s); ok || err != nil {
		if err != nil {
			return domain.Coordinate{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return coord, nil
	}
	found := h.resolver.ResolveAll(c.Request().Context(), []string{s})
	coord, ok := found[s]
	if !ok {
		return domain.Coordinate{}, echo.NewHTTPError(http.StatusUnprocessableEntity, fmt.Sprintf("unable to resolve %q", s))
	}
	return coord, nil
}

// ParsePoint parses "lat,lng". ok is false when s does not look like a
// coordinate pair at all; err is set when it does but is out of range.
func ParsePoint(s string) (coord domain.Coordinate, ok bool, err error) {
	latS, lngS, found := strings.Cut(s, ",")
	if !found {
		return domain.Coordinate{}, false, nil
	}
	lat, err1 := strconv.ParseFloat(strings.TrimSpace(latS), 64)
	lng, err2 := strconv.ParseFloat(strings.TrimSpace(lngS), 64)
	if err1 != nil || err2 != nil {
		return domain.Coordinate{}, false, nil
	}
	coord, valid := geo.FromPair([]float64{lat, lng})
	if !valid {
		return domain.Coordinate{}, true, fmt.Errorf("coordinate %q is out of range", s)
	}
	return coord, true, nil
}

func toCoordinatesResponse(c domain.Coordinate) coordinatesResponse {
	return coordinatesResponse{Lat: c.Lat, Lng: c.Lng, Geohash: geohash.EncodeWithPrecision(c.Lat, c.Lng, geohashChars)}
}
