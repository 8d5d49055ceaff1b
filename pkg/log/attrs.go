package log

import "log/slog"

func RequestID(id string) slog.Attr {
	return slog.String("request_id", id)
}

func CorrelationID(id string) slog.Attr {
	return slog.String("correlation_id", id)
}

func Method(name string) slog.Attr {
	return slog.String("method", name)
}

func WorkflowID(id string) slog.Attr {
	return slog.String("workflow_id", id)
}

func ExecutionID(id string) slog.Attr {
	return slog.String("execution_id", id)
}

func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}

func Error(err error) slog.Attr {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return slog.String("error", msg)
}

func ErrorString(msg string) slog.Attr {
	return slog.String("error", msg)
}
