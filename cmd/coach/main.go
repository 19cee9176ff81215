package main

import (
	"interview-coach/cmd/coach/cmd"
)

// @title Interview Coach API
// @version 1.0
// @description Mock job interviews driven by a language model: questions, per-answer scoring and coaching.

// @contact.name API Support

// @license.name MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	cmd.Execute()
}
