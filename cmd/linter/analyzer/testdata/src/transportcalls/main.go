package main

import (
	"log"
	"net/http"
	"os"
)

func main() {
	resp, err := http.Get("http://localhost:8000/monitoring/health") // No want
	if err != nil {
		log.Fatal(err) // No want
	}
	resp.Body.Close()

	exit := func() {
		os.Exit(0) // No want
	}
	exit()
}

func init() {
	panic("panic forbidden even in init") // want "panic is forbidden"
	log.Fatal("forbidden in init")        // want "log.Fatal is forbidden outside main function"
	os.Exit(1)                            // want "os.Exit is forbidden outside main function"
}
