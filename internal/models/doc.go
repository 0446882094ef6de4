// Package models provides functionality for listing and categorizing
// available OpenAI models. It helps users discover which chat models can
// be passed to --model for translation.
package models
