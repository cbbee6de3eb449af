package main

import "github.com/trektribe/backend/internal/server"

func main() {
	server.NewServer().Run()
}
