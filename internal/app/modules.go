package app

import (
	"github.com/vk/oplinkgo/internal/registry"
	"github.com/vk/oplinkgo/modules/env_vars"
	"github.com/vk/oplinkgo/modules/http_request"
	"github.com/vk/oplinkgo/modules/set_context"
	"github.com/vk/oplinkgo/modules/show_message"
	"github.com/vk/oplinkgo/modules/socketio_notify"
)

// coreModules lists the built-in operation modules registered when the
// caller does not supply its own set.
func coreModules() []registry.Module {
	return []registry.Module{
		&set_context.Module{},
		&show_message.Module{},
		&env_vars.Module{},
		&http_request.Module{},
		&socketio_notify.Module{},
	}
}
