package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingPatientIDKey      = "patient_id"
	LoggingEntryTypeKey      = "entry_type"
	LoggingEntryCountKey     = "entry_count"
	LoggingDiagnosisCountKey = "diagnosis_count"
	LoggingCacheKey          = "cache_key"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingIssueCountKey     = "issue_count"
)
