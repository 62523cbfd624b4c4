package atom

import "go.uber.org/zap"

// Logger receives debug-level diagnostics from the codec: style choices
// made by the binary encoder, large-atom splits performed by the
// frame-aware encoder, and stray continuation frames passed through by
// the binary decoder.
//
// It discards everything by default. Call SetLogger to observe it.
var Logger *zap.SugaredLogger = zap.NewNop().Sugar()

// SetLogger replaces the package-level logger. Passing nil restores the
// no-op logger.
func SetLogger(l *zap.SugaredLogger) {
	if l == nil {
		l = zap.NewNop().Sugar()
	}
	Logger = l
}
