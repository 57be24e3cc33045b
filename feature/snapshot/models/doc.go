// Package models defines the persistence schema for energy system runs.
package models
