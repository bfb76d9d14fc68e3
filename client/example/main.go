package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/goupdate/bigomap/client"
)

func main() {
	addr := flag.String("addr", "http://localhost:8080", "server base URL")
	kind := flag.String("kind", "", "kind to run, empty = all configured")
	flag.Parse()

	client.Timeout = 15 * time.Second
	c := client.New(*addr)

	ids, err := c.Run(*kind)
	if err != nil {
		log.Fatalf("Failed to run benchmark: %v", err)
	}
	log.Printf("Stored results %v", ids)

	for _, id := range ids {
		r, err := c.Get(id)
		if err != nil {
			log.Fatalf("Failed to get result %d: %v", id, err)
		}
		if r == nil {
			log.Printf("result %d is gone", id)
			continue
		}
		fmt.Printf("%s map results:\n\n%s", r.Kind, r)
	}
}
