// Package config loads savor's runtime configuration from environment
// variables, with optional .env file support for local development.
//
// Recognized variables:
//
//	MEALIE_URL        Base URL of the recipe server (default: https://demo.mealie.io)
//	MEALIE_API_TOKEN  Bearer token for the recipe server API
//	MEALIE_PAGE_SIZE  Page size for list endpoints (default: 100)
//	OLLAMA_URL        Base URL of the Ollama service (default: http://localhost:11434)
//	OLLAMA_MODEL      Model used for suggestions (default: gemma3:12b)
//	OLLAMA_TIMEOUT    Per-request timeout for suggestion calls (default: 30s)
//	LOG_LEVEL         Logging verbosity (default: info)
//
// Configuration is resolved once at startup; components receive the
// resulting Config value rather than reading the environment themselves.
package config
