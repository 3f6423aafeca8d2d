package document

type PolicyDocumentResponse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	FileURL    string `json:"file_url"`
	SizeBytes  int64  `json:"size_bytes"`
	UploadedBy string `json:"uploaded_by"`
	CreatedAt  string `json:"created_at"`
}
