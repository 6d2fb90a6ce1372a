package logging

// Standardized field names for structured logging. Using these constants
// keeps log output consistent and easy to filter.
const (
	FieldFile        = "file_path"
	FieldMessageType = "message_type"
	FieldField       = "field"
	FieldValue       = "value"
	FieldCustomerID  = "customer_id"
	FieldRow         = "row"
	FieldModel       = "model"
	FieldReason      = "reason"
	FieldStatus      = "status"
	FieldError       = "error"
	FieldDuration    = "duration_ms"
	FieldCount       = "count"
)
