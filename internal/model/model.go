package model

import (
	"fmt"
	"time"

	"houseprice/internal/config"
	"houseprice/internal/domain"
	"houseprice/internal/model/forest"
	"houseprice/internal/model/linear"
	"houseprice/internal/model/remote"
)

// Load builds the regressor selected by cfg. Every failure is a *domain.ModelLoadError.
func Load(cfg config.ModelConfig, dimension int) (domain.Regressor, error) {
	switch cfg.Type {
	case "linear":
		m, err := linear.Load(cfg.Path, dimension)
		if err != nil {
			return nil, &domain.ModelLoadError{Source: cfg.Path, Err: err}
		}
		return m, nil
	case "forest":
		f, err := forest.Load(cfg.Path, dimension)
		if err != nil {
			return nil, &domain.ModelLoadError{Source: cfg.Path, Err: err}
		}
		return f, nil
	case "remote":
		if cfg.Remote == nil {
			return nil, &domain.ModelLoadError{Source: "remote", Err: fmt.Errorf("model.remote section is missing")}
		}
		c, err := remote.NewClient(remote.Config{
			URL:        cfg.Remote.URL,
			APIKeyEnv:  cfg.Remote.APIKeyEnv,
			Timeout:    time.Duration(cfg.Remote.TimeoutSecs) * time.Second,
			MaxRetries: cfg.Remote.Retries(),
		})
		if err != nil {
			return nil, &domain.ModelLoadError{Source: cfg.Remote.URL, Err: err}
		}
		return c, nil
	default:
		return nil, &domain.ModelLoadError{Source: cfg.Type, Err: fmt.Errorf("unknown model type %q", cfg.Type)}
	}
}
