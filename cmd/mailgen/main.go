// cmd/mailgen/main.go
package main

import (
	"mailgen/internal/app"
	"mailgen/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
