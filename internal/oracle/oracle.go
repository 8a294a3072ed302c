package oracle

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"google.golang.org/genai"
)

// 预测服务：把股票快照和周期拼成提示词，一次调用生成式模型，
// 要求模型按固定JSON结构回复。调用失败不重试，由上层把错误原样抛给前端。

var (
	// ErrNoContent 模型没有返回内容
	ErrNoContent = errors.New("no prediction generated")
	// ErrUnparseable 模型返回内容不符合约定结构
	ErrUnparseable = errors.New("failed to parse AI prediction")
)

// StockFacts 提示词需要的股票快照
type StockFacts struct {
	Name          string
	Symbol        string
	CurrentPrice  float64
	PreviousClose float64
	Change        float64
	ChangePercent float64
	Sector        string
	MarketCap     float64
}

// Prediction 模型约定的回复结构
type Prediction struct {
	PredictedPrice float64 `json:"predictedPrice"`
	Confidence     float64 `json:"confidence"` // 0-100
	Reasoning      string  `json:"reasoning"`
}

// Oracle 价格预测接口
type Oracle interface {
	Predict(ctx context.Context, facts StockFacts, timeframe string) (Prediction, error)
}

type geminiOracle struct {
	client      *genai.Client
	model       string
	temperature float32
}

func NewGeminiOracle(client *genai.Client, model string, temperature float32) Oracle {
	return &geminiOracle{
		client:      client,
		model:       model,
		temperature: temperature,
	}
}

func buildPrompt(facts StockFacts, timeframe string) string {
	return fmt.Sprintf(`Analyze %s (%s) stock:
Current Price: ₹%v
Previous Close: ₹%v
Change: %v (%v%%)
Sector: %s
Market Cap: ₹%v Cr

Predict the stock price for %s timeframe and provide:
1. Predicted price
2. Confidence level (0-100)
3. Brief reasoning (max 100 words)

Format your response as JSON:
{
  "predictedPrice": number,
  "confidence": number,
  "reasoning": "string"
}`,
		facts.Name, facts.Symbol, facts.CurrentPrice, facts.PreviousClose,
		facts.Change, facts.ChangePercent, facts.Sector, facts.MarketCap, timeframe)
}

func (g *geminiOracle) Predict(ctx context.Context, facts StockFacts, timeframe string) (Prediction, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(g.temperature),
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(buildPrompt(facts, timeframe)), cfg)
	if err != nil {
		return Prediction{}, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return Prediction{}, ErrNoContent
	}
	content := resp.Candidates[0].Content.Parts[0].Text
	return parsePrediction(content)
}

// parsePrediction 解析模型回复。模型经常把JSON包在markdown代码块里，
// 只做去壳处理，不做其他修复。
func parsePrediction(content string) (Prediction, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return Prediction{}, ErrNoContent
	}
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var p Prediction
	if err := json.Unmarshal([]byte(content), &p); err != nil {
		return Prediction{}, fmt.Errorf("%w: %v", ErrUnparseable, err)
	}
	return p, nil
}
