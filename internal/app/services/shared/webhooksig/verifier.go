package webhooksig

import (
	"net/http"
	"strings"

	standardwebhooks "github.com/standard-webhooks/standard-webhooks/libraries/go"
)

// Verifier checks Standard Webhooks signatures on hook deliveries.
//
// Construction never fails: a malformed secret is held as a construction
// error and returned from every Verify call, so the caller's
// verification-failure policy applies instead of the process refusing to
// start.
type Verifier struct {
	webhook      *standardwebhooks.Webhook
	constructErr error
}

// NewVerifier builds a verifier for the configured hook secret. The auth
// platform renders secrets as "v1,whsec_<base64>"; the full form, the bare
// "whsec_<base64>" form, and the raw base64 are all accepted.
func NewVerifier(secret string) *Verifier {
	trimmed := strings.TrimPrefix(strings.TrimSpace(secret), "v1,")
	webhook, err := standardwebhooks.NewWebhook(trimmed)
	return &Verifier{
		webhook:      webhook,
		constructErr: err,
	}
}

// Verify checks the webhook-id, webhook-timestamp and webhook-signature
// headers against the raw request body.
func (v *Verifier) Verify(payload []byte, headers http.Header) error {
	if v.constructErr != nil {
		return v.constructErr
	}
	return v.webhook.Verify(payload, headers)
}
