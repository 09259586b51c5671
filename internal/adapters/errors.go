package adapters

import (
	"errors"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

func errorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}
