package ports

// Digester computes content digests of build artifacts.
//
//go:generate mockgen -source=digester.go -destination=mocks/mock_digester.go -package=mocks
type Digester interface {
	// DigestFile returns the hex-encoded content hash of the file at path.
	DigestFile(path string) (string, error)
}
