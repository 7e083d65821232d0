package request

import "servicecalc/internal/domain/entities"

// CustomerInfoRequest carries the visitor's contact block. Every field is
// optional; each is sanitized independently by the inquiry flow.
type CustomerInfoRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// InquiryRequest is the submit-inquiry payload.
type InquiryRequest struct {
	Services     []LineItemRequest   `json:"services" binding:"required"`
	CustomerInfo CustomerInfoRequest `json:"customer_info"`
}

func (r InquiryRequest) ToLineItems() []entities.LineItemRequest {
	return ToLineItems(r.Services)
}

func (r InquiryRequest) ToCustomerInfo() entities.CustomerInfo {
	return entities.CustomerInfo{
		Name:    r.CustomerInfo.Name,
		Email:   r.CustomerInfo.Email,
		Phone:   r.CustomerInfo.Phone,
		Message: r.CustomerInfo.Message,
	}
}
