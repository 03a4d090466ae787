package account

type LoginRequest struct {
	HospitalID string `json:"hospital_id" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type SignupRequest struct {
	HospitalID   string `json:"hospital_id" validate:"required"`
	Password     string `json:"password" validate:"required"`
	HospitalName string `json:"hospital_name" validate:"required"`
	PhoneNumber  string `json:"phone_number" validate:"required"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
