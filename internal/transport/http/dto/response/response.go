package response

import "halarcraft/internal/domain/models"

type Response struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

type ErrorResponse struct {
	Status  string                  `json:"status"`
	Error   string                  `json:"error"`
	Details string                  `json:"details,omitempty"`
	Fields  []models.FieldViolation `json:"fields,omitempty"`
}

func SuccessResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}

func ErrorResponseWithDetails(err, details string) ErrorResponse {
	return ErrorResponse{
		Status:  "error",
		Error:   err,
		Details: details,
	}
}

// ValidationErrorResponse перечисляет все нарушенные поля формы,
// чтобы клиент подсветил каждое, а не только первое
func ValidationErrorResponse(ve *models.ValidationError) ErrorResponse {
	return ErrorResponse{
		Status:  "error",
		Error:   "validation_failed",
		Details: ve.Error(),
		Fields:  ve.Violations,
	}
}
