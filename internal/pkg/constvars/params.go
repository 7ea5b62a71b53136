package constvars

const (
	URLParamPatientID = "id"
)

// Form field names of the add-entry form.
const (
	FormFieldEntryType         = "type"
	FormFieldDescription       = "description"
	FormFieldDate              = "date"
	FormFieldSpecialist        = "specialist"
	FormFieldDiagnosisCodes    = "diagnosisCodes"
	FormFieldHealthCheckRating = "healthCheckRating"
	FormFieldDischargeDate     = "dischargeDate"
	FormFieldDischargeCriteria = "dischargeCriteria"
	FormFieldEmployerName      = "employerName"
	FormFieldSickLeaveStart    = "sickLeaveStartDate"
	FormFieldSickLeaveEnd      = "sickLeaveEndDate"
)
