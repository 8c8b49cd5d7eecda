package main

import (
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
)

type service struct {
	client *http.Client
}

func (s *service) main() {
	os.Exit(1) // want "os.Exit is forbidden outside main function"
}

func shortenWithDefaults() {
	http.Post("http://localhost:8000/shorten", "application/json", strings.NewReader("{}")) // want "http.Post bypasses the injected client"
	http.PostForm("http://localhost:8000/shorten", url.Values{})                          // want "http.PostForm bypasses the injected client"
	http.Head("http://localhost:8000/monitoring/health")                                  // want "http.Head bypasses the injected client"
	http.DefaultClient.Get("http://localhost:8000")                                       // want "http.DefaultClient bypasses the injected client"
}

func shortenInjected(s *service) {
	req, _ := http.NewRequest(http.MethodPost, "http://localhost:8000/shorten", nil)
	s.client.Do(req)
}

func fail() {
	log.Fatal("fatal") // want "log.Fatal is forbidden outside main function"
}

func shadowed() {
	panic := func(string) {}
	panic("not the builtin")
}
