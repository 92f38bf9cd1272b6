package order_commands

import "errors"

var ErrUndefinedCommand = errors.New("undefined command type")
