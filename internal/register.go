package internal

import (
	"k8s.io/klog/v2"

	"github.com/atelier-lab/atelier/internal/handler"
)

// registerManagers builds every registered manager with the shared
// dependencies. The order follows the init order of the handler files.
func registerManagers(config *handler.RegisterConfig) []handler.Manager {
	managers := make([]handler.Manager, 0, len(handler.Registers))
	for _, register := range handler.Registers {
		manager := register(config)
		managers = append(managers, manager)
		klog.Infof("Registered manager: %s", manager.GetName())
	}
	return managers
}
