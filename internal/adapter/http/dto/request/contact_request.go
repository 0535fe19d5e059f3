package request

import "coatingshop/internal/domain/entities"

// ContactRequest is the public contact form. Field rules are checked by the
// contact use case so every problem is reported at once.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message"`
}

func (r ContactRequest) ToEntity() entities.ContactMessage {
	return entities.ContactMessage{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Service: r.Service,
		Message: r.Message,
	}
}
