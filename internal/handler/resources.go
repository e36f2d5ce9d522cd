package handler

import (
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/tidwall/gjson"

	"github.com/deppfellow/campus-registry/internal/errs"
	"github.com/deppfellow/campus-registry/internal/qb"
	"github.com/deppfellow/campus-registry/internal/resource"
	"github.com/deppfellow/campus-registry/internal/server"
	"github.com/deppfellow/campus-registry/internal/service"
)

// ResourceHandler serves the CRUD endpoints of one resource. The same
// handler code serves every registered resource; the behavior differences
// live in the descriptor and its rules.
type ResourceHandler struct {
	Handler

	res resource.Resource
	svc *service.ResourceService
}

// NewResourceHandler constructs the handler for one resource.
func NewResourceHandler(s *server.Server, res resource.Resource, svc *service.ResourceService) *ResourceHandler {
	return &ResourceHandler{
		Handler: NewHandler(s),
		res:     res,
		svc:     svc,
	}
}

// Path returns the route group the resource is served under, e.g.
// "/students".
func (h *ResourceHandler) Path() string {
	return h.res.Path
}

// List returns every row matching the query string's equality filters.
//
// Query parameters become filters in the order they appear; a repeated
// name keeps its first position and last value. The special parameter
// fields=c1,c2 selects the returned columns instead of filtering. No
// parameters at all returns the whole table.
func (h *ResourceHandler) List(c echo.Context) error {
	columns, filters := parseListQuery(c.Request().URL.RawQuery)

	rows, err := h.svc.List(c.Request().Context(), columns, filters)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, rows)
}

// Get returns the row with the given id as a single object.
func (h *ResourceHandler) Get(c echo.Context) error {
	id, err := h.pathID(c)
	if err != nil {
		return err
	}

	row, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, row)
}

// Create inserts the row described by the JSON body and returns the id
// the database assigned, keyed by the resource's id column.
func (h *ResourceHandler) Create(c echo.Context) error {
	values, err := bindBody(c)
	if err != nil {
		return err
	}

	id, err := h.svc.Create(c.Request().Context(), values)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message":      "Successfully inserted record!",
		h.res.IDColumn: id,
	})
}

// Update applies the JSON body to the row with the given id. The body is
// read before the service runs, so a malformed body fails even when the
// record is missing; for a readable body, an unknown id reports 404
// ahead of any validation failure.
func (h *ResourceHandler) Update(c echo.Context) error {
	id, err := h.pathID(c)
	if err != nil {
		return err
	}

	values, err := bindBody(c)
	if err != nil {
		return err
	}

	if err := h.svc.Update(c.Request().Context(), id, values); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Successfully updated record!",
	})
}

// Delete removes the row with the given id.
func (h *ResourceHandler) Delete(c echo.Context) error {
	id, err := h.pathID(c)
	if err != nil {
		return err
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Successfully deleted record!",
	})
}

// pathID parses the :id route parameter. A non-numeric id is a 400.
func (h *ResourceHandler) pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		message := fmt.Sprintf("Invalid %s: must be an integer", h.res.IDColumn)

		return 0, errs.NewBadRequestError(message, true, nil, nil)
	}

	return id, nil
}

// bindBody reads the request body as one JSON object, preserving the
// document order of its members. That order fixes the column order of
// the statements the builder renders to match what the client sent.
func bindBody(c echo.Context) (qb.Pairs, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}

	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("request body is not valid JSON")
	}

	parsed := gjson.ParseBytes(body)
	if !parsed.IsObject() {
		return nil, fmt.Errorf("request body is not a JSON object")
	}

	values := qb.Pairs{}
	parsed.ForEach(func(key, value gjson.Result) bool {
		values.Set(key.String(), scalarValue(value))
		return true
	})

	return values, nil
}

// scalarValue converts a JSON member to the scalar the driver binds.
// Integral numbers become int64 so they round-trip without a decimal
// point; everything else keeps its JSON type.
func scalarValue(value gjson.Result) any {
	switch value.Type {
	case gjson.Null:
		return nil
	case gjson.False:
		return false
	case gjson.True:
		return true
	case gjson.Number:
		f := value.Float()
		if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			return int64(f)
		}
		return f
	case gjson.String:
		return value.Str
	default:
		return value.Raw
	}
}

// parseListQuery splits a raw query string into an optional column
// projection and ordered equality filters.
//
// Parameters keep their request order so the WHERE clause renders the
// way the client wrote it. A fields parameter with a non-empty value
// becomes the projection and drops out of the filters; a bare fields=
// stays a filter, exactly as sent.
func parseListQuery(rawQuery string) ([]string, qb.Pairs) {
	filters := qb.Pairs{}

	for _, param := range strings.Split(rawQuery, "&") {
		if param == "" {
			continue
		}

		key, value, _ := strings.Cut(param, "=")
		if decoded, err := url.QueryUnescape(key); err == nil {
			key = decoded
		}
		if decoded, err := url.QueryUnescape(value); err == nil {
			value = decoded
		}

		filters.Set(key, value)
	}

	var columns []string
	if fields, ok := filters.Get("fields"); ok && fields != "" {
		columns = strings.Split(fields.(string), ",")
		filters.Delete("fields")
	}

	return columns, filters
}
