package config

const (
	defaultCivitaiBaseURL        = "https://civitai.com/api/v1"
	defaultCivitaiRequestTimeout = 30
	defaultModelExtension        = ".safetensors"
	defaultLogFormat             = "console"
	defaultLogLevel              = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Civitai: Civitai{
			BaseURL:        defaultCivitaiBaseURL,
			RequestTimeout: defaultCivitaiRequestTimeout,
		},
		Files: Files{
			Extension: defaultModelExtension,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
