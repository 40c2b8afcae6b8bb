package main

import (
	"log"

	"employeehub/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatalf("employeehub: %v", err)
	}
}
