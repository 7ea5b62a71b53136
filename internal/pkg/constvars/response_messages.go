package constvars

const (
	ResponseUnknown = "unknown"
)

const (
	PageTitlePatientDetail = "Patient details"
	PageTitleError         = "Something went wrong"
)
