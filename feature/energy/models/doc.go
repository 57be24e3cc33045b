// Package models defines the JSON views served by the energy feature.
package models
