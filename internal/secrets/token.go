package secrets

import (
	"errors"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// Service groups this app's secrets in the OS keychain.
	KeyringService = "joblabel"

	// EnvToken overrides the keychain, mainly for headless CI runs.
	EnvToken = "JOBLABEL_API_TOKEN"
)

// SourceAccount names the keychain entry for one collection source.
func SourceAccount(source string) string {
	return "joblabel:source:" + source
}

// GetSourceToken resolves an API token for a collection source:
// keychain first, env fallback.
func GetSourceToken(account string) (string, error) {
	if strings.TrimSpace(account) != "" {
		tok, err := keyring.Get(KeyringService, account)
		if err == nil && strings.TrimSpace(tok) != "" {
			return tok, nil
		}
	}
	if tok := strings.TrimSpace(os.Getenv(EnvToken)); tok != "" {
		return tok, nil
	}
	return "", errors.New("source API token not found (set it in the keychain or via " + EnvToken + ")")
}

func SetSourceToken(account, token string) error {
	if strings.TrimSpace(account) == "" {
		return errors.New("keyring account name is empty")
	}
	if strings.TrimSpace(token) == "" {
		return errors.New("token is empty")
	}
	return keyring.Set(KeyringService, account, token)
}

func DeleteSourceToken(account string) error {
	if strings.TrimSpace(account) == "" {
		return errors.New("keyring account name is empty")
	}
	return keyring.Delete(KeyringService, account)
}
