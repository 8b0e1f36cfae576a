// Package analysis extracts trading concepts from transcript text and
// derives a Pine Script implementation specification from them.
package analysis

// Concept categories, in the order they appear in reports.
const (
	CategoryIndicators = "indicators"
	CategoryPatterns   = "patterns"
	CategoryStrategies = "strategies"
	CategoryConditions = "conditions"
	CategoryTimeframes = "timeframes"
)

// tradingKeywords are the fixed per-category keyword lists matched against
// the lowercased transcript.
var tradingKeywords = map[string][]string{
	CategoryIndicators: {
		"rsi", "relative strength", "macd", "moving average", "ema", "sma", "wma",
		"bollinger bands", "bollinger", "stochastic", "volume", "atr", "average true range",
		"adx", "ichimoku", "fibonacci", "fib", "pivot points", "support", "resistance",
		"vwap", "momentum", "cci", "commodity channel", "williams", "obv", "on balance",
		"keltner", "donchian", "parabolic sar", "supertrend", "heikin ashi",
	},
	CategoryPatterns: {
		"breakout", "trend", "reversal", "divergence", "convergence", "bullish divergence",
		"bearish divergence", "hidden divergence", "cross", "crossover", "crossunder",
		"golden cross", "death cross", "squeeze", "flag", "pennant", "triangle",
		"head and shoulders", "double top", "double bottom", "cup and handle",
		"wedge", "channel", "range", "consolidation", "pullback", "retracement",
	},
	CategoryStrategies: {
		"scalping", "day trading", "swing trading", "position trading",
		"mean reversion", "trend following", "momentum trading", "breakout trading",
		"range trading", "grid trading", "martingale", "dca", "dollar cost averaging",
		"smart money", "order block", "fair value gap", "fvg", "liquidity",
	},
	CategoryConditions: {
		"entry", "exit", "stop loss", "take profit", "risk management",
		"position sizing", "trailing stop", "break even", "signal", "alert",
		"confirmation", "filter", "trigger", "buy signal", "sell signal",
		"long", "short", "close position", "partial profit",
	},
	CategoryTimeframes: {
		"1 minute", "5 minute", "15 minute", "30 minute", "1 hour", "4 hour",
		"daily", "weekly", "monthly", "multi timeframe", "mtf", "higher timeframe",
		"lower timeframe", "htf", "ltf", "m1", "m5", "m15", "m30", "h1", "h4", "d1",
	},
}

// Sentence qualifiers for strategy component bucketing.
var (
	entryKeywords = []string{"enter", "buy", "long", "entry", "go long", "open", "get in"}
	exitKeywords  = []string{"exit", "sell", "close", "take profit", "stop loss", "get out", "short"}
	riskKeywords  = []string{"risk", "position size", "money management", "drawdown", "stop", "loss"}
	ruleKeywords  = []string{"always", "never", "must", "important", "rule", "key"}
)

// problematicTerms flag concepts that Pine Script cannot implement without
// external data.
var problematicTerms = []string{"machine learning", "neural network", "ai", "sentiment", "news"}
