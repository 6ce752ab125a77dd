package models

import (
	"time"

	"github.com/google/uuid"
)

// GenerationParams represents the sampling parameters of a consultation
type GenerationParams struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	TopK        int     `json:"top_k"`
	NumBeams    int     `json:"num_beams"`
	MaxTokens   int     `json:"max_tokens"`
	Stream      bool    `json:"stream"`
}

// DefaultGenerationParams returns the parameters the consultation form starts with
func DefaultGenerationParams() GenerationParams {
	return GenerationParams{
		Temperature: 0.1,
		TopP:        0.75,
		TopK:        40,
		NumBeams:    4,
		MaxTokens:   512,
		Stream:      true,
	}
}

// ParamBound describes the accepted range of one generation parameter
type ParamBound struct {
	Name string  `json:"name"`
	Info string  `json:"info"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

// GenerationParamBounds lists the accepted ranges, in form display order
var GenerationParamBounds = []ParamBound{
	{Name: "Temperature", Info: "Controls randomness", Min: 0, Max: 1, Step: 0.1},
	{Name: "Top P", Info: "Nucleus sampling", Min: 0, Max: 1, Step: 0.05},
	{Name: "Top K", Info: "Top-k sampling", Min: 0, Max: 100, Step: 1},
	{Name: "Beams", Info: "Number of beams for beam search", Min: 1, Max: 4, Step: 1},
	{Name: "Max Tokens", Info: "Maximum response length", Min: 50, Max: 2000, Step: 50},
}

// ConsultationRequest represents a legal query sent to the consultation backend
type ConsultationRequest struct {
	Query string `json:"query"`
	GenerationParams
}

// Consultation represents an answered legal query
type Consultation struct {
	ID        uuid.UUID        `json:"id"`
	Query     string           `json:"query"`
	Answer    string           `json:"answer"`
	Params    GenerationParams `json:"params"`
	Cached    bool             `json:"cached"`
	CreatedAt time.Time        `json:"created_at"`
}
