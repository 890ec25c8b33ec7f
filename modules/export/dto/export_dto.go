package dto

// ExportRequest selects the output format; csv is the default
type ExportRequest struct {
	Format string `json:"format" validate:"omitempty,oneof=csv json"`
}

// ExportResponse carries the download link of a generated export
type ExportResponse struct {
	Key    string `json:"key"`
	Format string `json:"format"`
	URL    string `json:"url"`
}
