package pricing

import (
	"math"
	"math/rand"
)

const (
	StatusSuccess = "Success"
	StatusFailure = "Failure"

	// Stand-in bounds until a real fare engine replaces the generator.
	minAmount    = 10.00
	amountSpread = 50.00
)

type Outcome struct {
	Amount float64
	Status string
}

// Generator produces the payment outcome for a completed ride. The
// lifecycle code only sees this interface, so a real pricing engine can
// replace the random placeholder without touching it.
type Generator interface {
	Generate() Outcome
}

type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) Generate() Outcome {
	status := StatusFailure
	if rand.Float64() > 0.5 {
		status = StatusSuccess
	}
	amount := math.Round((minAmount+rand.Float64()*amountSpread)*100) / 100
	return Outcome{
		Amount: amount,
		Status: status,
	}
}
