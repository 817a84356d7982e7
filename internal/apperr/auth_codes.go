package apperr

// Provider error codes recognized by AuthMessage. Codes arriving from
// the client SDK carry an "auth/" prefix which is stripped before
// lookup.
const (
	CodeInvalidEmail         = "invalid-email"
	CodeUserDisabled         = "user-disabled"
	CodeUserNotFound         = "user-not-found"
	CodeWrongPassword        = "wrong-password"
	CodeEmailAlreadyInUse    = "email-already-in-use"
	CodeWeakPassword         = "weak-password"
	CodeNetworkRequestFailed = "network-request-failed"
	CodeTooManyRequests      = "too-many-requests"
	CodeRequiresRecentLogin  = "requires-recent-login"
)

var authMessages = map[string]string{
	CodeInvalidEmail:         "Invalid email address format.",
	CodeUserDisabled:         "This account has been disabled.",
	CodeUserNotFound:         "No account found with this email.",
	CodeWrongPassword:        "Incorrect password. Please try again.",
	CodeEmailAlreadyInUse:    "An account with this email already exists.",
	CodeWeakPassword:         "Password should be at least 6 characters long.",
	CodeNetworkRequestFailed: "Network error. Please check your connection.",
	CodeTooManyRequests:      "Too many unsuccessful attempts. Please try again later.",
	CodeRequiresRecentLogin:  "Please sign in again to perform this action.",
}

// AuthMessage returns the user-facing message for a provider error
// code. Unrecognized codes map to a generic message.
func AuthMessage(code string) string {
	const prefix = "auth/"
	if len(code) > len(prefix) && code[:len(prefix)] == prefix {
		code = code[len(prefix):]
	}
	if msg, ok := authMessages[code]; ok {
		return msg
	}
	return "An unexpected error occurred. Please try again."
}
