//go:build mage

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const sampleSeed = "testdata/sample-seed.yaml"

// Seed builds the CLI and loads the sample seed file into the default database.
func Seed() error {
	mg.Deps(Build)
	bin := filepath.Join(binDir, binName)
	if err := sh.RunV(bin, "load", sampleSeed); err != nil {
		return fmt.Errorf("loading %s: %w", sampleSeed, err)
	}
	return nil
}

// Demo loads the sample seed and runs a few lookups against it.
func Demo() error {
	mg.Deps(Seed)
	bin := filepath.Join(binDir, binName)
	for _, args := range [][]string{
		{"match", "in"},
		{"match", "in", "--fixed", "CW:0115=in", "--fixed", "CW:0117"},
		{"match", "12"},
		{"match", "it"},
		{"dicts"},
	} {
		fmt.Printf("\n$ %s %v\n", binName, args)
		if err := sh.RunV(bin, args...); err != nil {
			return err
		}
	}
	return nil
}
