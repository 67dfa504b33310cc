package handlers

import (
	"net/http"

	response "tiffin_tales/internal/adapter/http/dto/response"
	"tiffin_tales/internal/usecase"
	"tiffin_tales/pkg"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	usecase   usecase.ICatalogUseCase
	formatter *pkg.CurrencyFormatter
}

func NewCatalogHandler(uc usecase.ICatalogUseCase, formatter *pkg.CurrencyFormatter) *CatalogHandler {
	return &CatalogHandler{usecase: uc, formatter: formatter}
}

// GetCatalog godoc
// @Summary      Plans, weekly menu, healthy bowls and weekend specials
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.CatalogResponse
// @Router       /catalog [get]
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	catalog, err := h.usecase.GetCatalog(c.Request.Context())
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCatalog(catalog, h.formatter))
}

// GetPlan godoc
// @Summary      A single subscription plan
// @Tags         catalog
// @Produce      json
// @Param        code  path  string  true  "Plan code (basic, deluxe)"
// @Success      200  {object}  response.PlanResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /catalog/plans/{code} [get]
func (h *CatalogHandler) GetPlan(c *gin.Context) {
	plan, err := h.usecase.GetPlan(c.Request.Context(), c.Param("code"))
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPlan(plan, h.formatter))
}
