package config

// YAMLConfig mirrors the on-disk shape of lunar.yaml.
type YAMLConfig struct {
	Defaults YAMLDefaults `yaml:"defaults"`
	Output   YAMLOutput   `yaml:"output"`
}

type YAMLDefaults struct {
	Language string `yaml:"language"`
}

type YAMLOutput struct {
	Separator string `yaml:"separator"`
}
