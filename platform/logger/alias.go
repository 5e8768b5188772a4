package logger

import (
	"go.uber.org/zap"
)

var (
	String   = zap.String
	Int      = zap.Int
	Duration = zap.Duration
	Bool     = zap.Bool
	ErrorF   = zap.Error
)

type (
	Field = zap.Field
)
