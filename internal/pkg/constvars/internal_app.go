package constvars

type ContextKey string

const (
	ResourcePatients  = "/patients"
	ResourceDiagnoses = "/diagnoses"
	ResourceEntries   = "entries"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "PTNTR_WEB_"
)

const (
	RedisKeyDiagnosisCatalog = "patientor:diagnoses"
)

const (
	BusinessEventEntryAdded    = "entry_added"
	BusinessEventEntryRejected = "entry_rejected"
)
