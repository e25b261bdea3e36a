package domain

import (
	"errors"
	"math"
	"testing"
)

func contributionsOf(t *testing.T, amounts ...uint64) *Contributions {
	t.Helper()
	c := NewContributions()
	for i, amount := range amounts {
		c.Add(Address(rune('a'+i)), amount)
	}
	return c
}

func TestQuadraticScore(t *testing.T) {
	tests := []struct {
		name    string
		amounts []uint64
		want    uint64
	}{
		{name: "no contributors", amounts: nil, want: 0},
		// (1+2+3)^2 - 14 = 22
		{name: "three perfect squares", amounts: []uint64{1, 4, 9}, want: 22},
		// (5+5)^2 - 50 = 50
		{name: "two equal contributions", amounts: []uint64{25, 25}, want: 50},
		// floor sqrt 100 = 10; 100 - 100 = 0
		{name: "single contribution scores zero", amounts: []uint64{100}, want: 0},
		// floor sqrt 2 = 1; (1+1)^2 = 4 < 5, clamps to zero
		{name: "floor rounding clamps to zero", amounts: []uint64{2, 3}, want: 0},
		{name: "single unit contribution", amounts: []uint64{1}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := contributionsOf(t, tt.amounts...).QuadraticScore()
			if err != nil {
				t.Fatalf("quadratic score: %v", err)
			}
			if got != tt.want {
				t.Fatalf("score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestQuadraticScoreOverflow(t *testing.T) {
	c := contributionsOf(t, math.MaxUint64, math.MaxUint64)
	if _, err := c.QuadraticScore(); !errors.Is(err, ErrArithmeticOverflow) {
		t.Fatalf("expected overflow error, got %v", err)
	}
}

func TestMatchAmount(t *testing.T) {
	tests := []struct {
		name                    string
		score, totalScore, pool uint64
		want                    uint64
	}{
		{name: "zero pool", score: 22, totalScore: 22, pool: 0, want: 0},
		{name: "zero score", score: 0, totalScore: 50, pool: 100, want: 0},
		{name: "zero total score", score: 0, totalScore: 0, pool: 100, want: 0},
		{name: "full pool to sole project", score: 22, totalScore: 22, pool: 100, want: 100},
		{name: "proportional floor", score: 22, totalScore: 72, pool: 100, want: 30},
		{name: "remaining pool", score: 50, totalScore: 50, pool: 70, want: 70},
		{name: "large magnitudes", score: math.MaxUint64 / 2, totalScore: math.MaxUint64, pool: 1000, want: 499},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MatchAmount(tt.score, tt.totalScore, tt.pool)
			if err != nil {
				t.Fatalf("match amount: %v", err)
			}
			if got != tt.want {
				t.Fatalf("match = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMatchAmountNeverExceedsPool(t *testing.T) {
	for score := uint64(1); score <= 100; score++ {
		for total := score; total <= 100; total += 7 {
			got, err := MatchAmount(score, total, 1000)
			if err != nil {
				t.Fatalf("match amount(%d, %d): %v", score, total, err)
			}
			if got > 1000 {
				t.Fatalf("match %d exceeds pool for score %d/%d", got, score, total)
			}
		}
	}
}

func TestMatchAmountScoreExceedsTotal(t *testing.T) {
	if _, err := MatchAmount(10, 5, 100); !errors.Is(err, ErrArithmeticOverflow) {
		t.Fatalf("expected overflow error, got %v", err)
	}
}
