package requests

type RegisterUser struct {
	Submission map[string]interface{} `json:"submission" validate:"required"`
}
