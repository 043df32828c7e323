package constvars

const (
	ResourceHooks       = "hooks"
	HookSendSMSEndpoint = "/send-sms"
)

const (
	// HookSecretPrefix is how the auth platform renders the hook secret in its
	// dashboard. The verifier accepts the secret with or without it.
	HookSecretPrefix = "v1,whsec_"
)

// Standard Webhooks signature headers carried by hook deliveries.
const (
	HeaderWebhookID        = "webhook-id"
	HeaderWebhookTimestamp = "webhook-timestamp"
	HeaderWebhookSignature = "webhook-signature"
)
