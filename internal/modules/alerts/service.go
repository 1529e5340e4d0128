// Package alerts evaluates warning signals over caller-supplied capital,
// technical and risk readings for a single stock and day.
package alerts

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"
)

// Alert levels, in ascending severity.
const (
	LevelInfo    = "info"
	LevelWarning = "warning"
)

// Alert is one triggered warning signal.
type Alert struct {
	Type       string `json:"type"`
	Level      string `json:"level"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion"`
}

// CapitalReading carries the day's capital-flow figures in yuan.
// PrevNetInflow is the prior trading day's net inflow; the acceleration
// rule is skipped when it is absent or zero.
type CapitalReading struct {
	NetInflow      float64  `json:"net_inflow"`
	LargeNetInflow float64  `json:"large_net_inflow"`
	InflowRatio    float64  `json:"inflow_ratio"`
	PrevNetInflow  *float64 `json:"prev_net_inflow,omitempty"`
}

// TechnicalReading carries the day's price and indicator readings.
type TechnicalReading struct {
	ClosePrice float64 `json:"close_price"`
	MA5        float64 `json:"ma5"`
	MA10       float64 `json:"ma10"`
	MA20       float64 `json:"ma20"`
	RSI14      float64 `json:"rsi14"`
	ChangePct  float64 `json:"change_pct"`
}

// RiskReading carries the day's volatility and liquidity readings.
type RiskReading struct {
	Amplitude     float64 `json:"amplitude"`
	TurnoverRate  float64 `json:"turnover_rate"`
	Volatility20D float64 `json:"volatility_20d"`
}

// CheckRequest bundles the readings for one check. Absent sections are
// skipped, not treated as zero readings.
type CheckRequest struct {
	Capital   *CapitalReading   `json:"capital,omitempty"`
	Technical *TechnicalReading `json:"technical,omitempty"`
	Risk      *RiskReading      `json:"risk,omitempty"`
}

// Service evaluates the alert rules.
type Service struct {
	log zerolog.Logger
}

// NewService creates a new alert service
func NewService(log zerolog.Logger) *Service {
	return &Service{
		log: log.With().Str("service", "alerts").Logger(),
	}
}

// largeOutflowThreshold is the net outflow, in yuan, that triggers the
// capital-outflow warning (1000万).
const largeOutflowThreshold = -10000000

// Check runs every rule whose readings are present and returns the
// triggered alerts in capital, technical, risk order. No triggered rules
// yields an empty, non-nil slice.
func (s *Service) Check(req CheckRequest) []Alert {
	alerts := make([]Alert, 0, 4)

	if req.Capital != nil {
		alerts = append(alerts, s.checkCapital(*req.Capital)...)
	}
	if req.Technical != nil {
		alerts = append(alerts, s.checkTechnical(*req.Technical)...)
	}
	if req.Risk != nil {
		alerts = append(alerts, s.checkRisk(*req.Risk)...)
	}

	s.log.Debug().Int("triggered", len(alerts)).Msg("Alert check complete")
	return alerts
}

// checkCapital flags heavy outflow, main-force/retail divergence and
// inflow acceleration against the previous day.
func (s *Service) checkCapital(in CapitalReading) []Alert {
	var alerts []Alert

	if in.NetInflow < largeOutflowThreshold {
		alerts = append(alerts, Alert{
			Type:       "capital_outflow",
			Level:      LevelWarning,
			Message:    fmt.Sprintf("资金大幅流出，净流出%.0f万元", math.Abs(in.NetInflow)/10000),
			Suggestion: "注意风险，考虑减仓",
		})
	}

	if in.NetInflow > 0 && in.LargeNetInflow < 0 {
		alerts = append(alerts, Alert{
			Type:       "capital_divergence",
			Level:      LevelWarning,
			Message:    "主力资金流出但散户资金流入，存在背离",
			Suggestion: "谨慎对待，观察后续",
		})
	}

	if in.PrevNetInflow != nil && *in.PrevNetInflow != 0 && in.NetInflow > *in.PrevNetInflow*2 {
		alerts = append(alerts, Alert{
			Type:       "capital_acceleration",
			Level:      LevelInfo,
			Message:    "资金流入加速，关注度提升",
			Suggestion: "可适当关注",
		})
	}

	return alerts
}

// checkTechnical flags limit-board proximity, RSI extremes and a bearish
// moving-average alignment. The MA rule needs all three averages present
// (non-zero) to fire.
func (s *Service) checkTechnical(in TechnicalReading) []Alert {
	var alerts []Alert

	if in.ChangePct > 9 {
		alerts = append(alerts, Alert{
			Type:       "technical_limit_up",
			Level:      LevelWarning,
			Message:    fmt.Sprintf("涨幅达%.2f%%，接近涨停", in.ChangePct),
			Suggestion: "谨慎追高，等待回调",
		})
	} else if in.ChangePct < -9 {
		alerts = append(alerts, Alert{
			Type:       "technical_limit_down",
			Level:      LevelWarning,
			Message:    fmt.Sprintf("跌幅达%.2f%%，接近跌停", in.ChangePct),
			Suggestion: "回避风险，观望为主",
		})
	}

	if in.RSI14 > 80 {
		alerts = append(alerts, Alert{
			Type:       "technical_overbought",
			Level:      LevelWarning,
			Message:    fmt.Sprintf("RSI达%.1f，处于超买区间", in.RSI14),
			Suggestion: "注意回调风险",
		})
	} else if in.RSI14 > 0 && in.RSI14 < 20 {
		alerts = append(alerts, Alert{
			Type:       "technical_oversold",
			Level:      LevelInfo,
			Message:    fmt.Sprintf("RSI达%.1f，处于超卖区间", in.RSI14),
			Suggestion: "可关注反弹机会",
		})
	}

	if in.MA5 > 0 && in.MA10 > 0 && in.MA20 > 0 &&
		in.MA5 < in.MA10 && in.MA10 < in.MA20 && in.ClosePrice < in.MA5 {
		alerts = append(alerts, Alert{
			Type:       "technical_bearish_alignment",
			Level:      LevelWarning,
			Message:    "均线空头排列，价格跌破短期均线",
			Suggestion: "趋势转弱，控制仓位",
		})
	}

	return alerts
}

// checkRisk flags excessive amplitude, turnover and 20-day volatility.
func (s *Service) checkRisk(in RiskReading) []Alert {
	var alerts []Alert

	if in.Amplitude > 10 {
		alerts = append(alerts, Alert{
			Type:       "risk_high_amplitude",
			Level:      LevelWarning,
			Message:    fmt.Sprintf("日内振幅达%.1f%%，波动剧烈", in.Amplitude),
			Suggestion: "短线风险较高，谨慎参与",
		})
	}

	if in.TurnoverRate > 20 {
		alerts = append(alerts, Alert{
			Type:       "risk_high_turnover",
			Level:      LevelWarning,
			Message:    fmt.Sprintf("换手率达%.1f%%，筹码松动", in.TurnoverRate),
			Suggestion: "留意主力出货迹象",
		})
	}

	if in.Volatility20D > 3 {
		alerts = append(alerts, Alert{
			Type:       "risk_high_volatility",
			Level:      LevelInfo,
			Message:    fmt.Sprintf("20日波动率达%.2f，高于常态", in.Volatility20D),
			Suggestion: "控制仓位，分批操作",
		})
	}

	return alerts
}
