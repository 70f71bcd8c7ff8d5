package config_fx

import (
	"go.uber.org/fx"

	"feedbackapi/internal/config"
)

var Module = fx.Provide(config.Load)
