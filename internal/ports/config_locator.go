package ports

// ConfigLocator finds the lunar.yaml configuration file, if any.
type ConfigLocator interface {
	Find(startDir string) (string, error)
}
