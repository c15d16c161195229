package igdomain

// ErrorResponse é o envelope de erro da Graph API
type ErrorResponse struct {
	Error *ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// IsTokenExpired verifica se o erro é de token expirado ou inválido
func (e *ErrorResponse) IsTokenExpired() bool {
	if e == nil || e.Error == nil {
		return false
	}
	// 190 é "access token inválido"; os subcódigos 460, 463 e 467 indicam expiração
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}
