package models

import "time"

// BucketInfo represents an S3 bucket inspected for emptiness
type BucketInfo struct {
	BucketName    string
	Region        string
	CreationDate  time.Time
	ObjectCount   int // objects on the first list page, capped at 1000
	TotalSize     int64
	Empty         bool
}
