package config

import "github.com/fernandosanchezjr/gomseq/sequence"

type SequenceConfig struct {
	Name         string `yaml:"name"`
	Length       uint32 `yaml:"length,omitempty"`
	Polynomial   uint32 `yaml:"polynomial,omitempty"`
	InitialState uint32 `yaml:"state,omitempty"`
}

type Config struct {
	Sequences     []SequenceConfig `yaml:"sequences,omitempty"`
	ServerAddress string           `yaml:"server,omitempty"`
}

// Build constructs the configured generator, choosing the construction
// path from the fields present: a polynomial with a state uses both
// verbatim, a polynomial alone derives the register length, and a bare
// length selects a default polynomial.
func (sc *SequenceConfig) Build() (*sequence.MSequence, error) {
	switch {
	case sc.Polynomial != 0 && sc.InitialState != 0:
		return sequence.New(sc.Length, sc.Polynomial, sc.InitialState)
	case sc.Polynomial != 0:
		return sequence.NewFromPolynomial(sc.Polynomial)
	default:
		return sequence.NewDefault(sc.Length)
	}
}
