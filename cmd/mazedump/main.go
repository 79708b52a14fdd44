// Command mazedump prints a carved cube maze face by face.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/samdwyer/cubemaze/internal/world"
)

func main() {
	size := flag.Int("size", 3, "tiles per face edge")
	seed := flag.Int64("seed", 0, "carver seed")
	flag.Parse()

	m, err := world.Build(context.Background(), *size, *seed)
	if err != nil {
		log.Fatalf("build maze: %v", err)
	}
	if err := m.Render(os.Stdout); err != nil {
		log.Fatalf("render maze: %v", err)
	}
	fmt.Printf("fingerprint %016x\n", m.Fingerprint())
	fmt.Printf("edges %d of %d tiles\n", m.OpenEdges(), len(m.Tiles))
}
