package config

import "fmt"

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	// Port is the HTTP listen port.
	Port int

	// TenantID and AgentID stamp runs created by this deployment's
	// ingress. The schema is multi-tenant; a single-tenant install runs
	// with the defaults.
	TenantID string
	AgentID  string
}

// DefaultServerConfig returns the built-in server defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Port:     8080,
		TenantID: "default",
		AgentID:  "conductor",
	}
}

func loadServerConfig() ServerConfig {
	def := DefaultServerConfig()
	return ServerConfig{
		Port:     getEnvInt("API_PORT", def.Port),
		TenantID: getEnv("TENANT_ID", def.TenantID),
		AgentID:  getEnv("AGENT_ID", def.AgentID),
	}
}

// Validate checks the port range and identity fields.
func (c ServerConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return NewValidationError("server", "API_PORT",
			fmt.Errorf("must be between 1 and 65535, got %d", c.Port))
	}
	if c.TenantID == "" {
		return NewValidationError("server", "TENANT_ID", fmt.Errorf("must not be empty"))
	}
	if c.AgentID == "" {
		return NewValidationError("server", "AGENT_ID", fmt.Errorf("must not be empty"))
	}
	return nil
}

// DeliveryConfig holds outbound provider settings.
type DeliveryConfig struct {
	// DiscordBotToken enables Discord delivery when set.
	DiscordBotToken string
}

func loadDeliveryConfig() DeliveryConfig {
	return DeliveryConfig{
		DiscordBotToken: getEnv("DISCORD_BOT_TOKEN", ""),
	}
}

// DiscordEnabled reports whether Discord delivery is configured.
func (c DeliveryConfig) DiscordEnabled() bool {
	return c.DiscordBotToken != ""
}
