package ports

// WorkspacePort discovers analysis files within a project root.
type WorkspacePort interface {
	FindAnalysisFiles(root string) ([]string, error)
}
