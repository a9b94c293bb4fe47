package model

// User is declared for schema completeness. No route consumes it.
type User struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Address  string `json:"address" validate:"required"`
	Age      *int   `json:"age" validate:"omitempty,gte=0,lte=120"`
	IsActive *bool  `json:"is_active"`
}
