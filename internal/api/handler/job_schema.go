package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createJobRequest struct {
	ClientName string `json:"client_name" validate:"required"`
	Address    string `json:"address"     validate:"required"`
	Contact    string `json:"contact"     validate:"required"`
	JobType    string `json:"job_type"    validate:"required,oneof=Standard Channel Corner Raked"`
	Notes      string `json:"notes"`
}

// updateJobRequest carries a partial update: nil fields are left untouched on
// the stored job. Status is deliberately free-form beyond the known trio so
// the set stays extensible.
type updateJobRequest struct {
	ClientName   *string `json:"client_name"`
	Address      *string `json:"address"`
	Contact      *string `json:"contact"`
	JobType      *string `json:"job_type" validate:"omitempty,oneof=Standard Channel Corner Raked"`
	Notes        *string `json:"notes"`
	Status       *string `json:"status"`
	SignatureURL *string `json:"signature_url"`
}

type deletedResponse struct {
	Message string `json:"message"`
}
