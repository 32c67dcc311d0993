package logger

import "log/slog"

// Error records err under the key "error". Nil errors yield an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RunID records the identifier of a CLI run under the key "run_id".
func RunID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("run_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Input records a validated value under the key "input".
func Input(v string) slog.Attr {
	return slog.String("input", v)
}

// Result records a validation outcome under the key "result".
func Result(v any) slog.Attr {
	return slog.Any("result", v)
}
