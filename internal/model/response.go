package model

// UploadResponse is the JSON body returned for every upload request.
type UploadResponse struct {
	Message string `json:"message"`
}
