package model

// Domain constants shared across handler and storage packages.
const (
	BucketName         = "radar-speed-sign"
	DefaultContentType = "video/mp4"
	GeneratedKeyPrefix = "vid_uploaded_"
	GeneratedKeyExt    = ".mp4"
)
