package requests

// SendSMSHookEvent is the payload the auth platform posts to the send-sms
// hook whenever a phone sign-in needs a passcode delivered. ActionType names
// the flow that triggered the hook (sign-in, phone change); it is logged but
// carries no routing logic.
type SendSMSHookEvent struct {
	User       UserRecord  `json:"user"`
	SMS        SMSMetadata `json:"sms"`
	ActionType string      `json:"action_type"`
}

// UserRecord is the subset of the platform's user object the hook reads.
// During a phone-change flow the platform leaves Phone empty and puts the
// pending number in NewPhone instead.
type UserRecord struct {
	ID       string `json:"id"`
	Phone    string `json:"phone"`
	NewPhone string `json:"new_phone"`
	Email    string `json:"email"`
}

type SMSMetadata struct {
	OTP string `json:"otp"`
}
