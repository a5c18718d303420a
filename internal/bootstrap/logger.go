package bootstrap

import "go.uber.org/zap"

// NewLogger returns a JSON production logger or a console development logger.
func NewLogger(production bool) (*zap.Logger, error) {
	if production {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
