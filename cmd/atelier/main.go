package main

import (
	"k8s.io/klog/v2"

	"github.com/atelier-lab/atelier/cmd/atelier/helper"
)

// @title						Atelier API
// @version						1.0.0
// @description					This is the API server for Atelier, a multi-tenant workspace for prompt chains, artist references and shared inspirations.
// @securityDefinitions.apikey	SessionCookie
// @in							header
// @name						Cookie
// @description					访问 /login 登录后，浏览器会获得 HTTP-only 会话 Cookie，以访问受保护的接口
func main() {
	// Initialize configuration
	configInit := helper.NewConfigInitializer()
	backendConfig := configInit.GetBackendConfig()

	// Load debug environment if needed
	if err := configInit.LoadDebugEnvironment(); err != nil {
		klog.Fatalf("Failed to load env: %s", err)
	}

	// Initialize register config and dependencies
	registerConfig, err := configInit.InitializeRegisterConfig()
	if err != nil {
		klog.Fatalf("Failed to register config: %s\n", err)
	}

	// Start HTTP server
	serverRunner := helper.NewServerRunner(backendConfig)
	serverRunner.StartServer(registerConfig)
}
