package main

import "upipay_backend/internal/app"

func main() {
	app.Run()
}
