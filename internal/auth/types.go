package auth

// LoginOutput is where to send the user for consent.
type LoginOutput struct {
	URL   string
	State string
}

// CallbackInput is the OAuth redirect back to the service.
type CallbackInput struct {
	Code          string
	State         string
	ExpectedState string
}

// CallbackOutput is the session created for the user.
type CallbackOutput struct {
	SessionID string
	Email     string
}
