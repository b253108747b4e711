package messages

// Manifest and package metadata messages.
const (
	ManifestReadFailedFmt = "failed to read package metadata %s: %w"
	ManifestInvalidFmt    = "invalid package metadata %s: %w"
)
