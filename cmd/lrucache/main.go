package main

import (
	"fmt"
	"log"

	"lrucache"
)

func main() {
	c, err := lrucache.New[string, string](2)
	if err != nil {
		log.Fatalf("construct cache: %v", err)
	}

	log.Println("lrucache demo starting")
	log.Printf("config: capacity=%d", c.Cap())

	// -------------------------------------------------------------------
	// 1) LRU eviction demo (capacity=2)
	// -------------------------------------------------------------------
	c.Set("a", "A")
	c.Set("b", "B")

	// Touch "a" so "b" becomes least-recently-used.
	if v, ok := c.Get("a"); ok {
		log.Printf("GET a = %q (touches a -> MRU)", v)
	}

	// Insert "c" => cache overflows and evicts LRU (expected: "b").
	c.Set("c", "C")
	if !c.Has("b") {
		log.Println("HAS b: missing (evicted as LRU)")
	}
	log.Printf("keys after eviction (MRU->LRU): %v", c.Keys())

	// -------------------------------------------------------------------
	// 2) Peek vs Get demo (Peek never promotes)
	// -------------------------------------------------------------------
	if v, ok := c.Peek("a"); ok {
		log.Printf("PEEK a = %q (order unchanged)", v)
	}
	log.Printf("keys after peek (MRU->LRU): %v", c.Keys())

	if k, v, ok := c.Oldest(); ok {
		log.Printf("OLDEST = %s=%q (next eviction victim)", k, v)
	}

	// -------------------------------------------------------------------
	// 3) Lazy traversal demo
	// -------------------------------------------------------------------
	for k, v := range c.All() {
		log.Printf("RANGE %s=%q", k, v)
	}

	c.Clear()
	log.Printf("keys after clear: %v (len=%d, cap=%d)", c.Keys(), c.Len(), c.Cap())

	fmt.Println("Done.")
}
