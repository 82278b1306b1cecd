package server

import (
	"time"

	"github.com/sgostarter/liblagrange/lagrange"
	"github.com/sgostarter/liblagrange/solver"
)

type Config struct {
	Listen       string        `yaml:"listen" json:"listen"`
	ReadTimeout  time.Duration `yaml:"readTimeout" json:"readTimeout"`
	WriteTimeout time.Duration `yaml:"writeTimeout" json:"writeTimeout"`
	MaxBodyBytes int64         `yaml:"maxBodyBytes" json:"maxBodyBytes"`

	Solver solver.Config `yaml:"solver" json:"solver"`
}

type ComputeRequest struct {
	Points []lagrange.Sample `json:"points"`
	X      *float64          `json:"x"`
}

type ErrorResponse struct {
	RequestID string `json:"requestID,omitempty"`
	Error     string `json:"error"`
	Kind      string `json:"kind,omitempty"`
}

type ComputeResponse struct {
	RequestID string `json:"requestID"`
	*lagrange.Result
}
