package report

import (
	"go.uber.org/zap"

	"github.com/wtlabs/stocksim/sim"
)

// ZapSink logs settlement events through a zap logger. Settled legs log at
// info, rejections at warn.
type ZapSink struct {
	log *zap.Logger
}

func NewZapSink(log *zap.Logger) *ZapSink {
	return &ZapSink{log: log}
}

func (s *ZapSink) OnEvent(ev sim.Event) {
	fields := []zap.Field{
		zap.String("date", ev.Leg.Date.Format("20060102")),
		zap.String("side", ev.Leg.Side.String()),
		zap.Int("quantity", ev.Leg.Quantity),
		zap.Float64("price", ev.Leg.Price),
		zap.Float64("net", ev.Leg.NetCashFlow),
		zap.Float64("balance", ev.Balance),
		zap.String("rule", ev.Leg.RuleTag),
	}

	if ev.Kind == sim.EventRejected {
		s.log.Warn("settlement rejected", append(fields, zap.String("reason", ev.Reason))...)
		return
	}

	if ev.Trade != nil {
		fields = append(fields,
			zap.Float64("profit", ev.Trade.Profit),
			zap.Int("holding_days", ev.Trade.HoldingDays))
	}
	s.log.Info("settled", fields...)
}
