package config

import (
	"errors"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCivitai(); err != nil {
		return err
	}
	if err := c.validateFiles(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateCivitai() error {
	if c.Civitai.BaseURL == "" {
		return errors.New("civitai.base_url must be set")
	}
	if c.Civitai.RequestTimeout <= 0 {
		return errors.New("civitai.request_timeout must be positive (seconds)")
	}
	return nil
}

func (c *Config) validateFiles() error {
	if c.Files.Extension == "" {
		return errors.New("files.extension must be set")
	}
	return nil
}
