package libol

import "fmt"

type Err struct {
	Message string
}

func NewErr(format string, v ...interface{}) *Err {
	return &Err{
		Message: fmt.Sprintf(format, v...),
	}
}

func (e *Err) Error() string {
	return e.Message
}
