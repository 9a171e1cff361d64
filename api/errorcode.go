package api

import "github.com/sharecare/share-care-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "unauthorized access",
		1004: "forbidden access",
		1005: "identity service unavailable",

		1010: "invalid parameters",
		1011: "cannot parse request",
		1012: "invalid food id",

		1100: store.ErrFoodNotFound.Error(),
		1101: store.ErrEmptyFoodUpdate.Error(),

		1200: store.ErrStoreUnavailable.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorUnauthorized               = errorJSON(1003)
	errorForbidden                  = errorJSON(1004)
	errorIdentityUnavailable        = errorJSON(1005)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)
	errorInvalidFoodID      = errorJSON(1012)

	errorFoodNotFound    = errorJSON(1100)
	errorEmptyFoodUpdate = errorJSON(1101)

	errorStoreUnavailable = errorJSON(1200)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
