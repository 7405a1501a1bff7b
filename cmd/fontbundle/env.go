package main

import (
	"io"
	"os"

	"github.com/alnah/go-fontbundle/internal/config"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer
	Config *config.Config // Defaults; replaced when -c points at a file
}

// DefaultEnv returns the production environment with pinned defaults.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Config: config.DefaultConfig(),
	}
}
