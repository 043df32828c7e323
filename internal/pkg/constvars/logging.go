package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingOperationKey  = "operation"
	LoggingErrorCodeKey  = "error_code"
	LoggingChannelKey    = "channel"
	LoggingPhoneKey      = "phone"
	LoggingActionTypeKey = "action_type"
	LoggingResponseKey   = "response"
)
