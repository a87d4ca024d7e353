package logging

// Standardized field names for structured logging.
const (
	FieldFile       = "file_path"
	FieldComponent  = "component"
	FieldCategory   = "category"
	FieldStatus     = "status"
	FieldDuration   = "duration_ms"
	FieldCount      = "count"
	FieldDelimiter  = "delimiter"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldLine       = "line"
	FieldReceiptID  = "receipt_id"
	FieldFormat     = "format"
)
