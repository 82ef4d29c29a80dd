package report

// AttendanceExport is a generated spreadsheet ready to be streamed to the caller
type AttendanceExport struct {
	Filename string
	Content  []byte
}

const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
