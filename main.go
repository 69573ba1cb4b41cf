// Package main repostats API
//
//	@title			repostats API
//	@version		1.0.0
//	@description	Per-language line statistics for remote git repositories
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
package main

import "github.com/apiarycd/repostats/internal/cli"

//go:generate swag init --parseDependency --outputTypes go -g ./main.go -o ./internal/server/docs

func main() {
	cli.Execute()
}
