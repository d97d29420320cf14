package dto

import "github.com/GlebRadaev/storefront/internal/domain"

type CityDTO struct {
	ID   string `json:"id" example:"c1"`
	Name string `json:"name" example:"Berlin"`
}

type CitiesResponseDTO struct {
	Success bool      `json:"success" example:"true"`
	Cities  []CityDTO `json:"cities"`
}

type DistrictDTO struct {
	ID   string `json:"id" example:"d1"`
	Name string `json:"name" example:"Mitte"`
}

type DistrictsResponseDTO struct {
	Success   bool          `json:"success" example:"true"`
	Districts []DistrictDTO `json:"districts"`
}

type ProductTypeDTO struct {
	Name  string `json:"name" example:"tea"`
	Emoji string `json:"emoji" example:"🍵"`
}

type ProductTypesResponseDTO struct {
	Success bool             `json:"success" example:"true"`
	Types   []ProductTypeDTO `json:"types"`
}

type ProductDTO struct {
	ID       int    `json:"id" example:"7"`
	City     string `json:"city" example:"Berlin"`
	District string `json:"district" example:"Mitte"`
	Type     string `json:"type" example:"tea"`
	Size     string `json:"size" example:"M"`
	pricing
	InStock   int    `json:"in_stock" example:"3"`
	Emoji     string `json:"emoji" example:"🍵"`
	MediaType string `json:"media_type,omitempty" example:"photo"`
	HasMedia  bool   `json:"has_media,omitempty" example:"true"`
}

type ProductsResponseDTO struct {
	Success  bool         `json:"success" example:"true"`
	Products []ProductDTO `json:"products"`
}

type MediaDTO struct {
	Type   string `json:"type" example:"photo"`
	FileID string `json:"file_id" example:"AgACAgIAAxkBAAIB"`
}

type ProductDetailDTO struct {
	ID       int    `json:"id" example:"7"`
	City     string `json:"city" example:"Berlin"`
	District string `json:"district" example:"Mitte"`
	Type     string `json:"type" example:"tea"`
	Size     string `json:"size" example:"M"`
	pricing
	Description string     `json:"description" example:"Green tea, first flush"`
	InStock     int        `json:"in_stock" example:"3"`
	Emoji       string     `json:"emoji" example:"🍵"`
	Media       []MediaDTO `json:"media"`
}

type ProductResponseDTO struct {
	Success bool             `json:"success" example:"true"`
	Product ProductDetailDTO `json:"product"`
}

func NewCities(cities []domain.City) CitiesResponseDTO {
	resp := CitiesResponseDTO{Success: true, Cities: make([]CityDTO, 0, len(cities))}
	for _, c := range cities {
		resp.Cities = append(resp.Cities, CityDTO{ID: c.ID, Name: c.Name})
	}
	return resp
}

func NewDistricts(districts []domain.District) DistrictsResponseDTO {
	resp := DistrictsResponseDTO{Success: true, Districts: make([]DistrictDTO, 0, len(districts))}
	for _, d := range districts {
		resp.Districts = append(resp.Districts, DistrictDTO{ID: d.ID, Name: d.Name})
	}
	return resp
}

func NewProductTypes(types []domain.ProductType) ProductTypesResponseDTO {
	resp := ProductTypesResponseDTO{Success: true, Types: make([]ProductTypeDTO, 0, len(types))}
	for _, t := range types {
		resp.Types = append(resp.Types, ProductTypeDTO{Name: t.Name, Emoji: t.Emoji})
	}
	return resp
}

func NewProducts(views []domain.ProductView) ProductsResponseDTO {
	resp := ProductsResponseDTO{Success: true, Products: make([]ProductDTO, 0, len(views))}
	for _, v := range views {
		resp.Products = append(resp.Products, ProductDTO{
			ID:        v.ID,
			City:      v.City,
			District:  v.District,
			Type:      v.ProductType,
			Size:      v.Size,
			pricing:   newPricing(v.Quote),
			InStock:   v.InStock,
			Emoji:     v.Emoji,
			MediaType: v.MediaType,
			HasMedia:  v.HasMedia,
		})
	}
	return resp
}

func NewProduct(v domain.ProductView) ProductResponseDTO {
	media := make([]MediaDTO, 0, len(v.Media))
	for _, m := range v.Media {
		media = append(media, MediaDTO{Type: m.MediaType, FileID: m.FileID})
	}
	return ProductResponseDTO{
		Success: true,
		Product: ProductDetailDTO{
			ID:          v.ID,
			City:        v.City,
			District:    v.District,
			Type:        v.ProductType,
			Size:        v.Size,
			pricing:     newPricing(v.Quote),
			Description: v.Description,
			InStock:     v.InStock,
			Emoji:       v.Emoji,
			Media:       media,
		},
	}
}
