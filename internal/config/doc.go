// Package config manages application configuration for the WorkHive API.
//
// The config package loads and validates configuration from environment
// variables. All configuration is centralized here to provide a single
// source of truth.
//
// # Configuration Loading
//
//	cfg, _ := config.Load()
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Configuration Groups
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS origins)
//   - DatabaseConfig: SurrealDB connection settings
//   - JWTConfig: access/refresh token secrets and lifetimes
//   - SMTPConfig: outbound mail settings for the job digest
//   - SeedConfig: startup data seeder switches
//
// Token lifetimes accept Go duration syntax plus a "d" day suffix, so
// JWT_REFRESH_EXPIRE=7d means seven days.
package config
