package apierror

// Error type URIs following the urn:summit:error:* pattern.
// These are used as the "type" field in RFC 9457 Problem Details.
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:summit:error:validation"

	// TypeNotFound indicates the requested resource was not found (404)
	TypeNotFound = "urn:summit:error:not_found"

	// TypeInvalidDate indicates a malformed calendar date in the request (400)
	TypeInvalidDate = "urn:summit:error:invalid_date"

	// TypeBadRequest indicates a malformed or invalid request (400)
	TypeBadRequest = "urn:summit:error:bad_request"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:summit:error:internal"
)

// Titles for each error type - human-readable summaries
const (
	TitleValidation  = "Validation Error"
	TitleNotFound    = "Resource Not Found"
	TitleInvalidDate = "Invalid Date Format"
	TitleBadRequest  = "Bad Request"
	TitleInternal    = "Internal Server Error"
)
