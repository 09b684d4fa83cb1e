package report

// Artifact is the transient file a Serializer materialises. The report
// generator owns its lifetime and removes it after the content is read back,
// on both the success and failure paths.
type Artifact struct {
	Path     string
	Filename string
}

// Serializer turns an ordered row set with named columns into a downloadable
// artifact on disk.
type Serializer interface {
	CreateArtifact(baseName string, headers []string, rows [][]string) (Artifact, error)
}
