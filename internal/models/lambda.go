package models

// FunctionInfo represents a Lambda function
type FunctionInfo struct {
	FunctionName string
	Runtime      string
	MemoryMB     int32
	CodeSize     int64
	LastModified string
	Region       string
}
