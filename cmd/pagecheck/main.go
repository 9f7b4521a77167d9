// pagecheck exercises the page runtime against a running backend: it builds
// the page's attachment points, runs the catalog render and contact link
// composition, prints what a visitor would see, and optionally records a
// selection the way a card click would.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	appconfig "github.com/urbannest/homeserve-platform/internal/config"
	"github.com/urbannest/homeserve-platform/internal/page"
	"github.com/urbannest/homeserve-platform/internal/page/dom"
	"github.com/urbannest/homeserve-platform/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	backend := flag.String("backend", "http://localhost:5000", "backend base URL")
	selectCard := flag.Int("select", 0, "click the Nth rendered card's booking link (1-based)")
	flag.Parse()

	cfg := appconfig.Load()

	var store storage.Store
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		store = storage.NewRedisStore(client)
		fmt.Printf("using redis page store at %s\n", cfg.RedisAddr)
	} else {
		store = storage.NewMemoryStore()
		fmt.Println("using in-process page store")
	}

	doc := dom.NewMemoryDocument()
	grid := doc.NewElement("div")
	grid.SetAttr("id", "services-grid")
	doc.Root().AppendChild(grid)
	cta := doc.NewElement("a")
	cta.SetAttr("id", "cta-whatsapp")
	doc.Root().AppendChild(cta)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	p := page.New(doc, page.NewCatalogClient(*backend), store, nil)
	p.Run(ctx)

	cards := grid.Children()
	fmt.Printf("\n%d card(s) rendered from %s\n", len(cards), *backend)
	for _, card := range cards {
		children := card.Children()
		if len(children) < 5 {
			continue
		}
		fmt.Printf("  [%s] %s — %s (%s)\n",
			children[0].Text(), children[1].Text(), children[3].Text(), children[4].Attr("href"))
	}
	fmt.Printf("contact link: %s\n", cta.Attr("href"))

	if *selectCard > 0 {
		if *selectCard > len(cards) {
			fmt.Printf("no card %d to select\n", *selectCard)
			os.Exit(1)
		}
		children := cards[*selectCard-1].Children()
		children[len(children)-1].Click()
		selected, err := store.Get(ctx, page.KeySelectedService)
		if err != nil {
			fmt.Printf("selection not readable: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("recorded selection: %s=%s\n", page.KeySelectedService, selected)
	}
}
