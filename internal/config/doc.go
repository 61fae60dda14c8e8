// Presence Analyzer - Employee Presence Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/presence-analyzer

/*
Package config loads the presence analyzer configuration.

Values are layered with koanf, each layer overriding the one before:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: $CONFIG_PATH, ./config.yaml or /etc/presence-analyzer/config.yaml
 3. Environment variables listed below

# Environment Variables

Data sources:
  - DATA_CSV: presence CSV path (default: runtime/data/sample_data.csv)
  - DATA_XML: user roster XML path (default: runtime/data/users.xml)
  - DATA_CACHE_TTL: how long a parsed dataset is reused (default: 10m)
  - DATA_BREAKER_THRESHOLD: consecutive load failures before failing fast (default: 3)
  - DATA_BREAKER_TIMEOUT: how long the breaker stays open (default: 30s)

HTTP server:
  - HTTP_HOST: bind address (default: 0.0.0.0)
  - HTTP_PORT: listen port (default: 5000)
  - HTTP_TIMEOUT: read/write timeout (default: 30s)
  - HTTP_SHUTDOWN_TIMEOUT: graceful shutdown limit (default: 10s)

Security:
  - CORS_ORIGINS: comma separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS / RATE_LIMIT_WINDOW: per-IP limit (default: 100 per 1m)
  - DISABLE_RATE_LIMIT: true turns the limiter off

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Unknown environment variables are ignored.
*/
package config
