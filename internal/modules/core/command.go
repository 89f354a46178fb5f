package core

type CommandError struct {
	Err        error
	StatusCode int
	Reason     *string
}

type CommandErrorOption func(*CommandError)

func WithReason(reason string) CommandErrorOption {
	return func(e *CommandError) {
		e.Reason = &reason
	}
}

func NewCommandError(statusCode int, err error, opts ...CommandErrorOption) CommandError {
	e := CommandError{
		StatusCode: statusCode,
		Err:        err,
	}

	for _, opt := range opts {
		opt(&e)
	}

	return e
}

func (e CommandError) Error() string {
	if e.Err == nil && e.Reason != nil {
		return *e.Reason
	}
	if e.Err == nil {
		return "command failed"
	}
	return e.Err.Error()
}

func (e CommandError) Unwrap() error {
	return e.Err
}
