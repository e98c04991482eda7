package excel

// RawRow represents a row of raw tabular data as string key-value pairs
type RawRow map[string]string

// TableData represents the complete tabular dataset
type TableData struct {
	Headers []string // Column headers
	Rows    []RawRow // Data rows
}

// HasColumn reports whether a header with the exact name exists
func (d *TableData) HasColumn(name string) bool {
	for _, h := range d.Headers {
		if h == name {
			return true
		}
	}
	return false
}
