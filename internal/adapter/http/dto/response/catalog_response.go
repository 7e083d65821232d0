package response

import "servicecalc/internal/domain/entities"

type CustomAttributeResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type ServiceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Rate        string `json:"rate"`
	Unit        string `json:"unit"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	IconURL     string `json:"icon_url,omitempty"`
	MinOrder    string `json:"min_order,omitempty"`
	MaxOrder    string `json:"max_order,omitempty"`
	Step        string `json:"step"`

	CustomAttributes []CustomAttributeResponse `json:"custom_attributes,omitempty"`
}

func FromService(s entities.Service) ServiceResponse {
	res := ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Rate:        s.Rate.String(),
		Unit:        s.Unit,
		Category:    s.Category,
		Description: s.Description,
		IconURL:     s.IconURL,
		Step:        s.Step.String(),
	}
	if s.MinOrder != nil {
		res.MinOrder = s.MinOrder.String()
	}
	if s.MaxOrder != nil {
		res.MaxOrder = s.MaxOrder.String()
	}
	for _, attr := range s.CustomAttributes {
		res.CustomAttributes = append(res.CustomAttributes, CustomAttributeResponse(attr))
	}
	return res
}

func FromServices(services []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, FromService(s))
	}
	return out
}

type UnitResponse struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Type   string `json:"type"`
}

func FromUnits(units map[string]entities.Unit) map[string]UnitResponse {
	out := make(map[string]UnitResponse, len(units))
	for key, u := range units {
		out[key] = UnitResponse{Key: u.Key, Name: u.Name, Symbol: u.Symbol, Type: string(u.Type)}
	}
	return out
}

type CategoryResponse struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

func FromCategories(categories map[string]entities.Category) map[string]CategoryResponse {
	out := make(map[string]CategoryResponse, len(categories))
	for key, c := range categories {
		out[key] = CategoryResponse{Key: c.Key, Name: c.Name}
	}
	return out
}
