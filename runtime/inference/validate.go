package inference

import (
	"fmt"
	"strings"

	"github.com/aledsdavies/sketchparams/core/types"
)

const imageAccept = "image/*"

// validate runs the kind-specific structural checks on the final, merged
// config. value is the field's original value.
func validate(cfg types.ParamConfig, value any) error {
	switch c := cfg.(type) {
	case *types.FileConfig:
		return validateFile(c)
	case *types.NumericArrayConfig:
		vec, err := ToVector(value)
		if err != nil {
			return &types.UnsupportedValueError{Key: c.Key, Type: typeName(value), Reason: err.Error()}
		}
		return validateNumericArray(c, vec)
	}
	return nil
}

func validateFile(c *types.FileConfig) error {
	if c.Mode != types.FileModeImage {
		return nil
	}
	if c.Accept == "" {
		c.Accept = imageAccept
		return nil
	}
	if !strings.Contains(strings.ToLower(c.Accept), "image") {
		return &types.InvalidAcceptFilterError{Key: c.Key, Accept: c.Accept}
	}
	return nil
}

func validateNumericArray(c *types.NumericArrayConfig, vec []float64) error {
	if c.Style.IsColor() {
		if err := checkColor(c.Key, c.Style, vec); err != nil {
			return err
		}
	}

	if c.Default == nil {
		return nil
	}
	if len(c.Default) != len(vec) {
		return &types.InvalidDefaultError{
			Key:    c.Key,
			Reason: fmt.Sprintf("default has %d components, value has %d", len(c.Default), len(vec)),
		}
	}
	if c.Style.IsColor() {
		return checkColor(c.Key, c.Style, c.Default)
	}
	return nil
}
