package env

import (
	"fmt"

	"rtp_casino/internal/config"

	cenv "github.com/caarlos0/env/v11"
)

type httpConfig struct {
	Addr string `env:"HTTP_ADDR" envDefault:":8080"`
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	cfg, err := cenv.ParseAs[httpConfig]()
	if err != nil {
		return nil, fmt.Errorf("http config: %w", err)
	}
	return &cfg, nil
}

func (h *httpConfig) Address() string {
	return h.Addr
}
