package oracle

import (
	"errors"
	"strings"
	"testing"
)

func TestParsePrediction(t *testing.T) {
	p, err := parsePrediction(`{"predictedPrice": 1520.5, "confidence": 72, "reasoning": "momentum"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.PredictedPrice != 1520.5 || p.Confidence != 72 || p.Reasoning != "momentum" {
		t.Errorf("parsed wrong: %+v", p)
	}
}

func TestParsePredictionFenced(t *testing.T) {
	content := "```json\n{\"predictedPrice\": 99.9, \"confidence\": 55, \"reasoning\": \"range bound\"}\n```"
	p, err := parsePrediction(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.PredictedPrice != 99.9 {
		t.Errorf("parsed wrong: %+v", p)
	}
}

func TestParsePredictionEmpty(t *testing.T) {
	if _, err := parsePrediction("   "); !errors.Is(err, ErrNoContent) {
		t.Errorf("want ErrNoContent, got %v", err)
	}
}

func TestParsePredictionGarbage(t *testing.T) {
	if _, err := parsePrediction("I think the price will go up."); !errors.Is(err, ErrUnparseable) {
		t.Errorf("want ErrUnparseable, got %v", err)
	}
}

func TestBuildPromptContainsFacts(t *testing.T) {
	facts := StockFacts{
		Name:          "Infosys Ltd",
		Symbol:        "INFY",
		CurrentPrice:  1450.25,
		PreviousClose: 1440,
		Change:        10.25,
		ChangePercent: 0.71,
		Sector:        "IT",
		MarketCap:     700000,
	}
	prompt := buildPrompt(facts, "1w")
	for _, want := range []string{"Infosys Ltd", "INFY", "1450.25", "IT", "1w", "predictedPrice"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
