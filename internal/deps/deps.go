package deps

import (
	"time"

	"github.com/darwincel7/taller-sub001/internal/auth"
	"go.uber.org/zap"
)

type Deps struct {
	Logger       *zap.SugaredLogger
	TokenManager *auth.TokenManager
}

func NewDependencies(secretKey string, tokenTTL time.Duration) *Deps {
	logCfg := zap.NewProductionConfig()
	logCfg.OutputPaths = []string{"stdout", "tallerd.log"}

	logger := zap.Must(logCfg.Build())

	deps := Deps{Logger: logger.Sugar(), TokenManager: auth.NewTokenManager(secretKey, tokenTTL)}

	return &deps
}
