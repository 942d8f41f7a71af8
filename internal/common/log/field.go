package log

import (
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func String(key, value string) Field {
	return zap.String(key, value)
}

func Int(key string, value int) Field {
	return zap.Int(key, value)
}

func Int64(key string, value int64) Field {
	return zap.Int64(key, value)
}

func Bool(key string, value bool) Field {
	return zap.Bool(key, value)
}

func Time(key string, value time.Time) Field {
	return zap.Time(key, value)
}

func Duration(key string, value time.Duration) Field {
	return zap.Duration(key, value)
}

func Decimal(key string, value decimal.Decimal) Field {
	return zap.String(key, value.String())
}

func Err(err error) Field {
	return zap.Error(err)
}

func Any(key string, value any) Field {
	return zap.Any(key, value)
}
