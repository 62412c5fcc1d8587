package logger

import "go.uber.org/zap"

var Log = zap.NewNop()

func Init() {
	l, _ := zap.NewProduction()
	Log = l
}
