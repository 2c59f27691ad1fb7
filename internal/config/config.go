// Package config loads deck and simulation settings from HCL files.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/carddeck/deck"
)

// File is the top-level layout of a configuration file:
//
//	deck {
//	  decks     = 2
//	  hand_size = 5
//	  jokers    = []
//	  shuffle   = true
//	}
//
//	simulation {
//	  deals   = 10000
//	  workers = 4
//	}
//
// Every block and attribute is optional.
type File struct {
	Deck       *DeckBlock       `hcl:"deck,block"`
	Simulation *SimulationBlock `hcl:"simulation,block"`
}

// DeckBlock overrides deck.DefaultConfig. Unset attributes keep their defaults,
// an explicit empty list (jokers = []) clears the default.
type DeckBlock struct {
	Decks    *int      `hcl:"decks,optional"`
	HandSize *int      `hcl:"hand_size,optional"`
	Ranks    *[]string `hcl:"ranks,optional"`
	Suits    *[]string `hcl:"suits,optional"`
	Jokers   *[]string `hcl:"jokers,optional"`
	Shuffle  *bool     `hcl:"shuffle,optional"`
}

// SimulationBlock configures the simulate command.
type SimulationBlock struct {
	Deals   int `hcl:"deals,optional"`
	Workers int `hcl:"workers,optional"`
}

// Settings is a resolved configuration with defaults applied.
type Settings struct {
	Deck       deck.Config
	Simulation Simulation
}

// Simulation holds resolved simulation settings.
type Simulation struct {
	Deals   int
	Workers int
}

// Default returns the settings used when no file is given.
func Default() *Settings {
	return &Settings{
		Deck: deck.DefaultConfig(),
		Simulation: Simulation{
			Deals:   1000,
			Workers: runtime.NumCPU(),
		},
	}
}

// Load reads settings from an HCL file. A missing file yields defaults.
func Load(filename string) (*Settings, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source. filename is used in diagnostics only.
func Parse(src []byte, filename string) (*Settings, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw File
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	return raw.resolve(), nil
}

func (f *File) resolve() *Settings {
	s := Default()

	if b := f.Deck; b != nil {
		if b.Decks != nil {
			s.Deck.Decks = *b.Decks
		}
		if b.HandSize != nil {
			s.Deck.HandSize = *b.HandSize
		}
		if b.Ranks != nil {
			s.Deck.Ranks = *b.Ranks
		}
		if b.Suits != nil {
			s.Deck.Suits = *b.Suits
		}
		if b.Jokers != nil {
			s.Deck.Jokers = *b.Jokers
		}
		if b.Shuffle != nil {
			s.Deck.Shuffle = *b.Shuffle
		}
	}

	if b := f.Simulation; b != nil {
		if b.Deals > 0 {
			s.Simulation.Deals = b.Deals
		}
		if b.Workers > 0 {
			s.Simulation.Workers = b.Workers
		}
	}

	return s
}
