package orderbook

import "github.com/rs/zerolog"

// logger wraps the zerolog.Logger a Book was optionally constructed with.
// Never a package-level global (spec §5: "no global mutable state") — each
// Book owns its own, defaulting to a no-op sink so callers that don't care
// about internal diagnostics pay nothing for them.
type logger struct {
	log zerolog.Logger
}

func newLogger(l *zerolog.Logger) logger {
	if l == nil {
		nop := zerolog.Nop()
		return logger{log: nop}
	}
	return logger{log: *l}
}

func (lg logger) levelCreated(side Side, price Price) {
	lg.log.Debug().Str("side", side.String()).Int64("price", int64(price)).Msg("level created")
}

func (lg logger) levelCollapsed(side Side, price Price) {
	lg.log.Debug().Str("side", side.String()).Int64("price", int64(price)).Msg("level collapsed")
}

func (lg logger) contractViolation(op string, err error) {
	lg.log.Error().Str("op", op).Err(err).Msg("internal contract violation")
}
