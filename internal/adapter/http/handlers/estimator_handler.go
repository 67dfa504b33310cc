package handlers

import (
	"net/http"

	request "tiffin_tales/internal/adapter/http/dto/request"
	response "tiffin_tales/internal/adapter/http/dto/response"
	"tiffin_tales/internal/usecase"
	"tiffin_tales/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

var (
	errInvalidRowPayload      = pkg.NewDomainErrorSimple("INVALID_ROW_INPUT", "Invalid row payload", http.StatusBadRequest)
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimatorHandler serves estimator sessions and the stateless estimate.
type EstimatorHandler struct {
	usecase   usecase.IEstimatorUseCase
	formatter *pkg.CurrencyFormatter
}

func NewEstimatorHandler(uc usecase.IEstimatorUseCase, formatter *pkg.CurrencyFormatter) *EstimatorHandler {
	return &EstimatorHandler{usecase: uc, formatter: formatter}
}

// StartSession godoc
// @Summary      Start an estimator session
// @Tags         estimator
// @Produce      json
// @Success      201  {object}  response.SessionResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /estimator/sessions [post]
func (h *EstimatorHandler) StartSession(c *gin.Context) {
	snap, err := h.usecase.StartSession(c.Request.Context())
	if err != nil {
		h.fail(c, "start", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromSessionSnapshot(snap, h.formatter))
}

// GetSession godoc
// @Summary      Get an estimator session with its running estimate
// @Tags         estimator
// @Produce      json
// @Param        session_id  path  string  true  "Session ID"
// @Success      200  {object}  response.SessionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /estimator/sessions/{session_id} [get]
func (h *EstimatorHandler) GetSession(c *gin.Context) {
	snap, err := h.usecase.GetSession(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		h.fail(c, "get", err)
		return
	}
	c.JSON(http.StatusOK, response.FromSessionSnapshot(snap, h.formatter))
}

// AddRow godoc
// @Summary      Append an order row
// @Description  Blocked with 409 while any row has days unset or zero. An optional plan code seeds the unit price.
// @Tags         estimator
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                 true   "Session ID"
// @Param        payload     body  request.AddRowRequest  false  "Optional plan"
// @Success      201  {object}  response.AddRowResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /estimator/sessions/{session_id}/rows [post]
func (h *EstimatorHandler) AddRow(c *gin.Context) {
	var payload request.AddRowRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidRowPayload.HTTPStatus, errInvalidRowPayload.ToHTTPError())
			return
		}
	}

	snap, row, err := h.usecase.AddRow(c.Request.Context(), c.Param("session_id"), payload.ResolvePlan())
	if err != nil {
		h.fail(c, "add-row", err)
		return
	}
	c.JSON(http.StatusCreated, response.AddRowResponse{
		SessionResponse: response.FromSessionSnapshot(snap, h.formatter),
		AddedRowID:      row.ID,
	})
}

// UpdateRow godoc
// @Summary      Edit one field of an order row
// @Description  Non-numeric or negative values are ignored and reported with applied=false. An empty value clears the field.
// @Tags         estimator
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                    true  "Session ID"
// @Param        row_id      path  string                    true  "Row ID"
// @Param        payload     body  request.UpdateRowRequest  true  "Field and raw value"
// @Success      200  {object}  response.UpdateRowResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /estimator/sessions/{session_id}/rows/{row_id} [patch]
func (h *EstimatorHandler) UpdateRow(c *gin.Context) {
	var payload request.UpdateRowRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRowPayload.HTTPStatus, errInvalidRowPayload.ToHTTPError())
		return
	}
	value, err := payload.ResolveValue()
	if err != nil {
		c.JSON(errInvalidRowPayload.HTTPStatus, errInvalidRowPayload.ToHTTPError())
		return
	}

	snap, applied, err := h.usecase.UpdateRow(c.Request.Context(), c.Param("session_id"), c.Param("row_id"), payload.ResolveField(), value)
	if err != nil {
		h.fail(c, "update-row", err)
		return
	}
	c.JSON(http.StatusOK, response.UpdateRowResponse{
		SessionResponse: response.FromSessionSnapshot(snap, h.formatter),
		Applied:         applied,
	})
}

// RemoveRow godoc
// @Summary      Remove an order row
// @Description  Removing the only row resets it to an empty row instead.
// @Tags         estimator
// @Produce      json
// @Param        session_id  path  string  true  "Session ID"
// @Param        row_id      path  string  true  "Row ID"
// @Success      200  {object}  response.SessionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /estimator/sessions/{session_id}/rows/{row_id} [delete]
func (h *EstimatorHandler) RemoveRow(c *gin.Context) {
	snap, err := h.usecase.RemoveRow(c.Request.Context(), c.Param("session_id"), c.Param("row_id"))
	if err != nil {
		h.fail(c, "remove-row", err)
		return
	}
	c.JSON(http.StatusOK, response.FromSessionSnapshot(snap, h.formatter))
}

// CalculateEstimate godoc
// @Summary      Compute an estimate for client-held rows
// @Tags         estimator
// @Accept       json
// @Produce      json
// @Param        payload  body  request.EstimateRequest  true  "Rows"
// @Success      200  {object}  response.EstimateResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /estimates [post]
func (h *EstimatorHandler) CalculateEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}
	rows, err := payload.ResolveRows()
	if err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate := h.usecase.CalculateEstimate(c.Request.Context(), rows)
	c.JSON(http.StatusOK, response.FromEstimate(estimate, h.formatter))
}

func (h *EstimatorHandler) fail(c *gin.Context, op string, err error) {
	appErr := mapUseCaseError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Errorf("[estimator][handler] %s failed session_id=%s err=%v", op, c.Param("session_id"), err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
