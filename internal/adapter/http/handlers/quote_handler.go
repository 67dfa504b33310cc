package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"tiffin_tales/internal/domain/entities"
	"tiffin_tales/internal/usecase"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// ExportQuote godoc
// @Summary      Download the session's quote
// @Description  Renders the current rows as a PDF (default) or XLSX attachment. Returns 422 while the grand total is zero and 409 while another export for the same session is running.
// @Tags         estimator
// @Produce      application/pdf
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        session_id  path   string  true   "Session ID"
// @Param        format      query  string  false  "pdf or xlsx"  default(pdf)
// @Success      200  {file}    file
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /estimator/sessions/{session_id}/quote [get]
func (h *QuoteHandler) ExportQuote(c *gin.Context) {
	sessionID := c.Param("session_id")
	format := entities.QuoteFormat(strings.ToLower(strings.TrimSpace(c.DefaultQuery("format", string(entities.QuoteFormatPDF)))))

	file, err := h.usecase.ExportQuote(c.Request.Context(), sessionID, format)
	if err != nil {
		appErr := mapUseCaseError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			log.Errorf("[quote][handler] export failed session_id=%s format=%s err=%v", sessionID, format, err)
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}
