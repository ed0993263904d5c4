package service

import "errors"

var (
	ErrProgramNotFound     = errors.New("program not found")
	ErrClientNotFound      = errors.New("client not found")
	ErrDuplicateProgram    = errors.New("program already exists")
	ErrDuplicateClient     = errors.New("client already exists")
	ErrDuplicateEnrollment = errors.New("client already enrolled in program")
)
