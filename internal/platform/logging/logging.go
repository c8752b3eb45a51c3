// Package logging builds the process-wide zap logger.
package logging

import "go.uber.org/zap"

// New returns a JSON production logger in production and a console
// development logger otherwise.
func New(environment string) (*zap.Logger, error) {
	if environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
