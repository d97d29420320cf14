package catalog

//go:generate mockgen -source=catalog.go -destination=mock_catalog.go -package=catalog

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/storefront/internal/domain"
	"github.com/GlebRadaev/storefront/internal/dto"
	"github.com/GlebRadaev/storefront/pkg/auth"
	"github.com/GlebRadaev/storefront/pkg/utils"
)

const msgProductNotFound = "Product not found or out of stock"

type Service interface {
	Cities() []domain.City
	Districts(cityID string) []domain.District
	ProductTypes() []domain.ProductType
	ListProducts(ctx context.Context, filter domain.ProductFilter, userID int64) ([]domain.ProductView, error)
	GetProduct(ctx context.Context, id int, userID int64) (*domain.ProductView, error)
}

type CatalogHandler struct {
	catalogService Service
}

func New(catalogService Service) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// GetCities godoc
//
//	@Summary	List cities
//	@Tags		Каталог
//	@Produce	json
//	@Success	200	{object}	dto.CitiesResponseDTO	"Cities"
//	@Router		/api/cities [get]
func (h *CatalogHandler) GetCities(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCities(h.catalogService.Cities()))
}

// GetDistricts godoc
//
//	@Summary		List districts of a city
//	@Description	An unknown city has no districts.
//	@Tags			Каталог
//	@Produce		json
//	@Param			cityID	path		string					true	"City id"
//	@Success		200		{object}	dto.DistrictsResponseDTO	"Districts"
//	@Router			/api/districts/{cityID} [get]
func (h *CatalogHandler) GetDistricts(w http.ResponseWriter, r *http.Request) {
	cityID := chi.URLParam(r, "cityID")
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDistricts(h.catalogService.Districts(cityID)))
}

// GetProductTypes godoc
//
//	@Summary	List product types with their emoji
//	@Tags		Каталог
//	@Produce	json
//	@Success	200	{object}	dto.ProductTypesResponseDTO	"Product types"
//	@Router		/api/product-types [get]
func (h *CatalogHandler) GetProductTypes(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, dto.NewProductTypes(h.catalogService.ProductTypes()))
}

// GetProducts godoc
//
//	@Summary		List sellable products
//	@Description	Up to 100 products with free stock, newest first. District only filters together with city. Reseller pricing applies to the authenticated user, or to user_id for anonymous callers.
//	@Tags			Каталог
//	@Produce		json
//	@Param			city		query		string	false	"City id"
//	@Param			district	query		string	false	"District id"
//	@Param			type		query		string	false	"Product type"
//	@Param			user_id		query		int		false	"User id for reseller pricing"
//	@Success		200			{object}	dto.ProductsResponseDTO	"Products"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/products [get]
func (h *CatalogHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := domain.ProductFilter{
		City:        query.Get("city"),
		District:    query.Get("district"),
		ProductType: query.Get("type"),
	}

	userID, ok := auth.UserID(r.Context())
	if !ok {
		userID, _ = strconv.ParseInt(query.Get("user_id"), 10, 64)
	}

	products, err := h.catalogService.ListProducts(r.Context(), filter, userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewProducts(products))
}

// GetProduct godoc
//
//	@Summary		Get product details
//	@Description	A sellable product with its description and all media. Reseller pricing applies when the caller is authenticated.
//	@Tags			Каталог
//	@Produce		json
//	@Param			productID	path		int						true	"Product id"
//	@Success		200			{object}	dto.ProductResponseDTO	"Product"
//	@Failure		404			{object}	utils.Response			"Product not found or out of stock"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/product/{productID} [get]
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, msgProductNotFound)
		return
	}
	userID, _ := auth.UserID(r.Context())

	product, err := h.catalogService.GetProduct(r.Context(), productID, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			utils.RespondWithError(w, http.StatusNotFound, msgProductNotFound)
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewProduct(*product))
}
