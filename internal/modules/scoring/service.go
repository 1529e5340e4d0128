// Package scoring implements the composite stock scoring model: four
// dimension scores (capital, technical, fundamental, risk) combined into a
// weighted total with a trading signal and an analysis summary.
package scoring

import (
	"math"

	"github.com/rs/zerolog"
)

// Weights configures the contribution of each dimension to the total score.
type Weights struct {
	Capital     float64 `json:"capital"`
	Technical   float64 `json:"technical"`
	Fundamental float64 `json:"fundamental"`
	Risk        float64 `json:"risk"`
}

// DefaultWeights returns the standard dimension weighting.
func DefaultWeights() Weights {
	return Weights{
		Capital:     0.40,
		Technical:   0.30,
		Fundamental: 0.20,
		Risk:        0.10,
	}
}

// CapitalInput carries the capital-flow readings for one stock on one day.
type CapitalInput struct {
	NetInflow        float64 `json:"net_inflow"`
	InflowRatio      float64 `json:"inflow_ratio"`
	LargeNetInflow   float64 `json:"large_net_inflow"`
	LargeInflowRatio float64 `json:"large_inflow_ratio"`
	TotalAmount      float64 `json:"total_amount"`
	PositiveDays     int     `json:"positive_days"`
}

// TechnicalInput carries the daily technical readings.
type TechnicalInput struct {
	ClosePrice float64 `json:"close_price"`
	MA5        float64 `json:"ma5"`
	MA20       float64 `json:"ma20"`
	MA60       float64 `json:"ma60"`
	Volume     float64 `json:"volume"`
	VMA5       float64 `json:"vma5"`
	ChangePct  float64 `json:"change_pct"`
}

// FundamentalInput carries the sector-level readings for the stock's block.
type FundamentalInput struct {
	InflowRatio    float64 `json:"inflow_ratio"`
	Ranking        int     `json:"ranking"`
	ContinuityDays int     `json:"continuity_days"`
	BlockType      string  `json:"block_type"`
}

// RiskInput carries the volatility and liquidity readings.
type RiskInput struct {
	Amplitude     float64 `json:"amplitude"`
	TurnoverRate  float64 `json:"turnover_rate"`
	TotalAmount   float64 `json:"total_amount"`
	Volatility20D float64 `json:"volatility_20d"`
}

// ScoreRequest bundles all four dimension inputs.
type ScoreRequest struct {
	Capital     CapitalInput     `json:"capital"`
	Technical   TechnicalInput   `json:"technical"`
	Fundamental FundamentalInput `json:"fundamental"`
	Risk        RiskInput        `json:"risk"`
}

// Scores holds the four dimension scores and the weighted total, each in
// [0, 100].
type Scores struct {
	Capital     float64 `json:"capital"`
	Technical   float64 `json:"technical"`
	Fundamental float64 `json:"fundamental"`
	Risk        float64 `json:"risk"`
	Total       float64 `json:"total"`
}

// Signal is the trading signal derived from the scores.
type Signal struct {
	Type        string  `json:"type"`
	Strength    int     `json:"strength"`
	Confidence  float64 `json:"confidence"`
	Description string  `json:"description"`
}

// Analysis is the human-readable summary of the score breakdown.
type Analysis struct {
	Strengths      []string `json:"strengths"`
	Weaknesses     []string `json:"weaknesses"`
	Recommendation string   `json:"recommendation"`
}

// Result is the full scoring output.
type Result struct {
	Scores   Scores   `json:"scores"`
	Weights  Weights  `json:"weights"`
	Signal   Signal   `json:"signal"`
	Analysis Analysis `json:"analysis"`
}

// Service scores stocks from caller-supplied dimension inputs
type Service struct {
	weights Weights
	log     zerolog.Logger
}

// NewService creates a new scoring service with the given weights
func NewService(weights Weights, log zerolog.Logger) *Service {
	return &Service{
		weights: weights,
		log:     log.With().Str("service", "scoring").Logger(),
	}
}

// Score computes the four dimension scores, the weighted total, the trading
// signal and the analysis summary.
func (s *Service) Score(req ScoreRequest) Result {
	capital := s.CapitalScore(req.Capital)
	technical := s.TechnicalScore(req.Technical)
	fundamental := s.FundamentalScore(req.Fundamental)
	risk := s.RiskScore(req.Risk)

	total := capital*s.weights.Capital +
		technical*s.weights.Technical +
		fundamental*s.weights.Fundamental +
		risk*s.weights.Risk

	result := Result{
		Scores: Scores{
			Capital:     round2(capital),
			Technical:   round2(technical),
			Fundamental: round2(fundamental),
			Risk:        round2(risk),
			Total:       round2(total),
		},
		Weights:  s.weights,
		Signal:   generateSignal(total, capital, technical),
		Analysis: generateAnalysis(capital, technical, fundamental, risk),
	}

	s.log.Debug().
		Float64("total", result.Scores.Total).
		Str("signal", result.Signal.Type).
		Msg("Scored stock")
	return result
}

// CapitalScore rates the capital-flow dimension. Starts from a neutral 50,
// rewards net inflow, large-order inflow, inflow persistence, and adjusts
// for traded amount on a log scale.
func (s *Service) CapitalScore(in CapitalInput) float64 {
	score := 50.0

	if in.NetInflow > 0 {
		score += math.Min(in.InflowRatio*2, 25)
	}
	if in.LargeNetInflow > 0 {
		score += math.Min(in.LargeInflowRatio*2, 25)
	}

	score += math.Min(float64(in.PositiveDays)*4, 20)

	// Thin trading drags the score below base, heavy trading lifts it.
	score += math.Min(math.Log10(math.Max(in.TotalAmount, 1))-6, 10)

	return clamp(score, 0, 100)
}

// TechnicalScore rates the technical dimension: moving-average alignment,
// volume-price confirmation, trend strength, and an overbought/oversold
// adjustment near the daily limits.
func (s *Service) TechnicalScore(in TechnicalInput) float64 {
	score := 50.0

	if in.MA5 > 0 && in.MA20 > 0 && in.MA60 > 0 {
		switch {
		case in.MA5 > in.MA20 && in.MA20 > in.MA60:
			score += 30
		case in.MA5 > in.MA20:
			score += 20
		case in.ClosePrice > in.MA5:
			score += 10
		}
	}

	if in.Volume > 0 && in.VMA5 > 0 {
		volumeRatio := in.Volume / in.VMA5
		if in.ChangePct > 0 && volumeRatio > 1.2 {
			score += 20
		} else if in.ChangePct > 0 && volumeRatio > 1.0 {
			score += 10
		}
	}

	if in.MA5 > 0 && in.MA20 > 0 {
		trendStrength := math.Abs((in.MA5 - in.MA20) / in.MA20 * 100)
		score += math.Min(trendStrength, 15)
	}

	// Near limit-up is overbought; near limit-down may rebound.
	if in.ChangePct > 9 {
		score -= 10
	} else if in.ChangePct < -9 {
		score += 5
	}

	return clamp(score, 0, 100)
}

// FundamentalScore rates the sector dimension: block capital inflow, block
// ranking, inflow persistence, and a block-type adjustment.
func (s *Service) FundamentalScore(in FundamentalInput) float64 {
	score := 50.0

	if in.InflowRatio != 0 {
		score += math.Min(in.InflowRatio*5, 25)
	}
	if in.Ranking != 0 {
		score += math.Max(0, 20-float64(in.Ranking)/5)
	}
	if in.ContinuityDays > 0 {
		score += math.Min(float64(in.ContinuityDays)*3, 15)
	}

	switch in.BlockType {
	case "concept":
		score += 5
	case "industry":
		score += 10
	}

	return clamp(score, 0, 100)
}

// RiskScore rates the risk dimension. Higher means lower risk: the score
// starts at 100 and loses points for amplitude, turnover, thin liquidity
// and 20-day volatility.
func (s *Service) RiskScore(in RiskInput) float64 {
	score := 100.0

	switch {
	case in.Amplitude > 10:
		score -= 30
	case in.Amplitude > 7:
		score -= 20
	case in.Amplitude > 5:
		score -= 10
	}

	switch {
	case in.TurnoverRate > 20:
		score -= 25
	case in.TurnoverRate > 10:
		score -= 15
	case in.TurnoverRate > 5:
		score -= 5
	}

	if in.TotalAmount != 0 {
		if in.TotalAmount < 10_000_000 {
			score -= 20
		} else if in.TotalAmount < 50_000_000 {
			score -= 10
		}
	}

	if in.Volatility20D > 3 {
		score -= 15
	} else if in.Volatility20D > 2 {
		score -= 10
	}

	return clamp(score, 0, 100)
}

var signalDescriptions = map[string]string{
	"strong_buy":  "强烈买入信号，各维度共振向好",
	"buy":         "买入信号，综合表现积极",
	"watch":       "观察信号，可纳入关注列表",
	"hold":        "持有信号，维持现有仓位",
	"reduce":      "减仓信号，注意控制仓位",
	"sell":        "卖出信号，综合表现转弱",
	"strong_sell": "强烈卖出信号，各维度明显恶化",
}

// generateSignal maps the total score onto a signal band and derives the
// signal strength, discounted when the capital and technical dimensions
// disagree.
func generateSignal(total, capital, technical float64) Signal {
	var signalType string
	switch {
	case total >= 80:
		signalType = "strong_buy"
	case total >= 70:
		signalType = "buy"
	case total >= 60:
		signalType = "watch"
	case total >= 50:
		signalType = "hold"
	case total >= 40:
		signalType = "reduce"
	case total >= 30:
		signalType = "sell"
	default:
		signalType = "strong_sell"
	}

	strength := 0
	switch signalType {
	case "strong_buy", "strong_sell":
		strength = 3
	case "buy", "sell":
		strength = 2
	case "watch", "reduce":
		strength = 1
	}

	// A wide gap between capital and technical scores means the signal is
	// not confirmed across dimensions.
	if math.Abs(capital-technical)/100 > 0.3 {
		strength = max(0, strength-1)
	}

	return Signal{
		Type:        signalType,
		Strength:    strength,
		Confidence:  math.Min(100, total),
		Description: signalDescriptions[signalType],
	}
}

// generateAnalysis produces the strengths/weaknesses summary from the
// dimension scores.
func generateAnalysis(capital, technical, fundamental, risk float64) Analysis {
	strengths := []string{}
	weaknesses := []string{}

	if capital >= 70 {
		strengths = append(strengths, "资金面强劲，主力资金持续流入")
	} else if capital >= 60 {
		strengths = append(strengths, "资金面良好，有资金关注")
	}

	if technical >= 70 {
		strengths = append(strengths, "技术形态良好，趋势向上")
	} else if technical >= 60 {
		strengths = append(strengths, "技术面稳健，处于上升通道")
	}

	if fundamental >= 70 {
		strengths = append(strengths, "板块效应明显，属于热点板块")
	}
	if risk >= 80 {
		strengths = append(strengths, "风险控制良好，波动性较低")
	}

	if capital <= 40 {
		weaknesses = append(weaknesses, "资金面疲弱，主力资金流出")
	}
	if technical <= 40 {
		weaknesses = append(weaknesses, "技术形态走弱，存在下行风险")
	}
	if risk <= 40 {
		weaknesses = append(weaknesses, "风险较高，波动性较大")
	}

	return Analysis{
		Strengths:      strengths,
		Weaknesses:     weaknesses,
		Recommendation: recommendation(capital, technical, risk),
	}
}

func recommendation(capital, technical, risk float64) string {
	switch {
	case capital >= 70 && technical >= 70 && risk >= 60:
		return "资金与技术共振，可积极参与"
	case capital >= 60 && technical >= 60:
		return "表现良好，可逢低关注"
	case risk < 40:
		return "波动风险偏高，建议谨慎"
	case capital <= 40 && technical <= 40:
		return "多维度走弱，建议回避"
	default:
		return "表现中性，建议观望"
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
