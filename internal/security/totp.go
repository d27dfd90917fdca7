package security

import (
	"fmt"

	"github.com/pquerna/otp/totp"
)

// totpIssuer labels generated TOTP secrets in authenticator apps.
const totpIssuer = "The Detail Proz Admin"

// GenerateTOTPSecret creates a new TOTP secret for an admin account and
// returns the secret plus the otpauth provisioning URL.
func GenerateTOTPSecret(accountName string) (secret, url string, err error) {
	key, errGenerate := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: accountName,
	})
	if errGenerate != nil {
		return "", "", fmt.Errorf("security: generate totp secret: %w", errGenerate)
	}
	return key.Secret(), key.URL(), nil
}

// ValidateTOTP reports whether a code is currently valid for the secret.
func ValidateTOTP(secret, code string) bool {
	return totp.Validate(code, secret)
}
