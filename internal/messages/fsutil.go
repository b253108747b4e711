package messages

// Atomic file write messages.
const (
	FsCreateTempFileFmt = "create temp file: %w"
	FsWriteTempFileFmt  = "write temp file: %w"
	FsSyncTempFileFmt   = "sync temp file: %w"
	FsCloseTempFileFmt  = "close temp file: %w"
	FsChmodTempFileFmt  = "chmod temp file: %w"
)
