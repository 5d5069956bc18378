package xlog

import (
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

var _ fxevent.Logger = (*FxXLogger)(nil)

// FxXLogger routes the fx lifecycle events into the XLogger.
// Successful wiring events are DEBUG, failures are ERROR.
type FxXLogger struct {
	logger XLogger
}

func (l *FxXLogger) LogEvent(event fxevent.Event) {
	if l == nil || l.logger == nil {
		return
	}

	switch e := event.(type) {
	case *fxevent.OnStartExecuting:
		l.logger.Debug("fx hook OnStart executing",
			zap.String("function", e.FunctionName),
			zap.String("caller", e.CallerName),
		)
	case *fxevent.OnStartExecuted:
		l.hookExecuted("OnStart", e.FunctionName, e.CallerName, int64(e.Runtime), e.Err)
	case *fxevent.OnStopExecuting:
		l.logger.Debug("fx hook OnStop executing",
			zap.String("function", e.FunctionName),
			zap.String("caller", e.CallerName),
		)
	case *fxevent.OnStopExecuted:
		l.hookExecuted("OnStop", e.FunctionName, e.CallerName, int64(e.Runtime), e.Err)
	case *fxevent.Supplied:
		if e.Err != nil {
			l.logger.Error(e.Err, "fx supply failed",
				zap.String("type", e.TypeName),
				zap.Strings("stacktrace", e.StackTrace),
			)
			return
		}
		l.logger.Debug("fx supplied", zap.String("type", e.TypeName), zap.String("module", e.ModuleName))
	case *fxevent.Provided:
		for _, rtype := range e.OutputTypeNames {
			l.logger.Debug("fx provided",
				zap.String("rtype", rtype),
				zap.String("constructor", e.ConstructorName),
				zap.String("module", e.ModuleName),
				zap.Bool("private", e.Private),
			)
		}
		if e.Err != nil {
			l.logger.Error(e.Err, "fx provide failed", zap.Strings("stacktrace", e.StackTrace))
		}
	case *fxevent.Decorated:
		for _, rtype := range e.OutputTypeNames {
			l.logger.Debug("fx decorated",
				zap.String("rtype", rtype),
				zap.String("decorator", e.DecoratorName),
				zap.String("module", e.ModuleName),
			)
		}
		if e.Err != nil {
			l.logger.Error(e.Err, "fx decorate failed", zap.Strings("stacktrace", e.StackTrace))
		}
	case *fxevent.Invoking:
		l.logger.Debug("fx invoking", zap.String("function", e.FunctionName), zap.String("module", e.ModuleName))
	case *fxevent.Invoked:
		if e.Err != nil {
			l.logger.Error(e.Err, "fx invoke failed",
				zap.String("function", e.FunctionName),
				zap.String("trace", e.Trace),
			)
		}
	case *fxevent.Stopping:
		l.logger.Debug("fx stopping", zap.String("signal", e.Signal.String()))
	case *fxevent.Stopped:
		if e.Err != nil {
			l.logger.Error(e.Err, "fx stop failed")
		}
	case *fxevent.RollingBack:
		l.logger.Warn("fx start failed, rolling back", zap.Error(e.StartErr))
	case *fxevent.RolledBack:
		if e.Err != nil {
			l.logger.Error(e.Err, "fx roll back failed")
		}
	case *fxevent.Started:
		if e.Err != nil {
			l.logger.Error(e.Err, "fx start failed")
			return
		}
		l.logger.Debug("fx running")
	case *fxevent.LoggerInitialized:
		if e.Err != nil {
			l.logger.Error(e.Err, "fx custom logger initialize failed")
			return
		}
		l.logger.Debug("fx custom logger initialized", zap.String("constructor", e.ConstructorName))
	}
}

func (l *FxXLogger) hookExecuted(hook, fn, caller string, runtime int64, err error) {
	if err != nil {
		l.logger.Error(err, "fx hook "+hook+" failed",
			zap.String("function", fn),
			zap.String("caller", caller),
			zap.Int64("in", runtime),
		)
		return
	}
	l.logger.Debug("fx hook "+hook+" executed",
		zap.String("function", fn),
		zap.String("caller", caller),
		zap.Int64("in", runtime),
	)
}

func NewFxXLogger(logger XLogger) *FxXLogger {
	if logger == nil {
		return &FxXLogger{}
	}
	return &FxXLogger{logger: logger.Named("Fx")}
}
