package main

import "localgigs_backend/internal/app"

func main() {
	app.Run()
}
