package response

import "coatingshop/internal/domain/entities"

type CatalogResponse struct {
	entities.Catalog
	Statuses    []string `json:"statuses"`
	MinQuantity int      `json:"min_quantity"`
	MaxQuantity int      `json:"max_quantity"`
}

func FromCatalog(c entities.Catalog) CatalogResponse {
	lifecycle := entities.QuoteLifecycle()
	statuses := make([]string, 0, len(lifecycle)+2)
	for _, s := range lifecycle {
		statuses = append(statuses, string(s))
	}
	statuses = append(statuses, string(entities.QuoteStatusRejected), string(entities.QuoteStatusCancelled))
	return CatalogResponse{
		Catalog:     c,
		Statuses:    statuses,
		MinQuantity: entities.MinItemQuantity,
		MaxQuantity: entities.MaxItemQuantity,
	}
}

type ValidateFieldResponse struct {
	Field string `json:"field"`
	Error string `json:"error"`
	Valid bool   `json:"valid"`
}
