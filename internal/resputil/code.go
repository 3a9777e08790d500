package resputil

type ErrorCode int

const (
	OK ErrorCode = 0

	// General
	InvalidRequest ErrorCode = 40001

	// Inline image payload could not be parsed
	InvalidDataURI ErrorCode = 40002

	// Session
	TokenExpired ErrorCode = 40101
	TokenInvalid ErrorCode = 40102

	// Login
	InvalidCredentials ErrorCode = 40106
	RegisterClosed     ErrorCode = 40107

	// User is not allowed to access the resource
	UserNotAllowed ErrorCode = 40301

	// Resource not found
	NotFound ErrorCode = 40401

	// Duplicate resource
	Conflict ErrorCode = 40901

	// Storage quota would be exceeded by the upload
	QuotaExceeded ErrorCode = 41301

	// Internal error while talking to a backing service
	ServiceError ErrorCode = 50001

	// Object storage is not configured or unreachable
	StorageUnavailable ErrorCode = 50301

	// Image generation backend is not configured
	GenerationUnavailable ErrorCode = 50302

	// Indicates laziness of the developer
	// Frontend will directly print the message without any translation
	NotSpecified ErrorCode = 99999
)
