package dto

// ExportInput names the output file. An empty Path writes to the reports
// directory under a dated name.
type ExportInput struct {
	Path string
}

type ExportOutput struct {
	Path        string `json:"path"`
	Format      string `json:"format"`
	Assignments int    `json:"assignments"`
	Sessions    int    `json:"sessions"`
}
