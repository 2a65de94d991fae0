package http

import "worklife-balance/internal/auth"

// --- Request DTOs ---

type callbackReq struct {
	Code  string `form:"code"`
	State string `form:"state"`
	Error string `form:"error"`
}

func (r callbackReq) toInput(expectedState string) auth.CallbackInput {
	return auth.CallbackInput{
		Code:          r.Code,
		State:         r.State,
		ExpectedState: expectedState,
	}
}

// --- Response DTOs ---

type statusResp struct {
	Authenticated bool   `json:"authenticated"`
	Email         string `json:"email,omitempty"`
}

type logoutResp struct {
	Message string `json:"message"`
}
