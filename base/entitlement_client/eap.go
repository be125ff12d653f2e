package entitlement_client

import (
	"github.com/pkg/errors"
)

var ErrEapAkaUnsupported = errors.New("EAP-AKA authentication is not available")

// Authenticator computes EAP-AKA response for the server challenge
type Authenticator interface {
	Respond(challenge string) (string, error)
}

// BypassAuthenticator accepts any challenge and replies with fixed response
type BypassAuthenticator struct {
	Response string
}

func (a BypassAuthenticator) Respond(string) (string, error) {
	return a.Response, nil
}

// UnsupportedAuthenticator is used when SIM based authentication is not wired in
type UnsupportedAuthenticator struct{}

func (UnsupportedAuthenticator) Respond(string) (string, error) {
	return "", ErrEapAkaUnsupported
}
