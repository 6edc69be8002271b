package validation

import "chess_backend/domain"

// Credentials carry no format rules: any non-empty username and password are
// accepted, matching the registration contract.
func CredentialsPresent(username string, password string) bool {
	return username != "" && password != ""
}

func ValidResult(result string) bool {
	switch result {
	case domain.ResultWin, domain.ResultLoss, domain.ResultDraw:
		return true
	}
	return false
}
