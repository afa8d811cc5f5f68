package domain

// Config represents the minimal lunar configuration loaded from lunar.yaml.
type Config struct {
	Defaults DefaultsConfig
	Output   OutputConfig
}

type DefaultsConfig struct {
	Language Language
}

type OutputConfig struct {
	// Separator sits between the display string and the Han characters.
	Separator string
}

// DefaultConfig provides sane defaults if lunar.yaml is missing or partial.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Language: LangEnglish,
		},
		Output: OutputConfig{
			Separator: "\t",
		},
	}
}
