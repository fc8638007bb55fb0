package iio

import (
	"log/slog"

	"github.com/noos-go/iio-demo/pkg/log"
)

// Driver constructs Apps with shared logging defaults. Fields set in the
// InitParam take precedence.
type Driver struct {
	Logger         *slog.Logger
	ProtocolLogger log.Logger
}

// Init constructs an App.
func (d Driver) Init(param InitParam) (*App, error) {
	if param.Logger == nil {
		param.Logger = d.Logger
	}
	if param.ProtocolLogger == nil {
		param.ProtocolLogger = d.ProtocolLogger
	}
	return Init(param)
}
