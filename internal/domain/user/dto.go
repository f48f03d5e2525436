package user

// UserResponse represents user data in API responses
type UserResponse struct {
	ID                 string `json:"id"`
	CPF                string `json:"cpf"`
	RegistrationNumber string `json:"registration_number"`
	Email              string `json:"email"`
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	CreatedAt          string `json:"created_at"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:                 u.ID,
		CPF:                u.CPF,
		RegistrationNumber: u.RegistrationNumber,
		Email:              u.Email,
		FirstName:          u.FirstName,
		LastName:           u.LastName,
		CreatedAt:          u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
