package opts

import (
	"github.com/walteh/fileorg/pkg/config"
)

// RootOpts contains the resolved inputs of one fileorg run
type RootOpts struct {
	Config *config.Config
}
