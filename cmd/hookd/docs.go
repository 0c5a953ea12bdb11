package main

// General API documentation for swaggo. Run `swag init -g cmd/hookd/main.go
// -o internal/httpapi/docs` to regenerate.
//
// @title           hookd API
// @version         1.0
// @description     HTTP API for runtime behavior attachment on managed entities.
//
// @contact.name   hookd maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
