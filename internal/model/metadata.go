package model

// MetadataContentType is the user metadata key that repeats the content type.
const MetadataContentType = "contentType"

// StoredObject is a single write handed to the object store.
type StoredObject struct {
	Bucket      string
	Key         string
	Body        []byte
	ContentType string
	Metadata    map[string]string
}

// NewStoredObject builds the object for key in the upload bucket.
func NewStoredObject(key string, body []byte, contentType string) StoredObject {
	return StoredObject{
		Bucket:      BucketName,
		Key:         key,
		Body:        body,
		ContentType: contentType,
		Metadata:    map[string]string{MetadataContentType: contentType},
	}
}
