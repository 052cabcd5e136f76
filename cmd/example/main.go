package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spetersoncode/flagshim"
	"github.com/spetersoncode/flagshim/storage"
)

// cachedClient is a stand-in for a real flag client: it only reads the
// toggle repository its storage provider has cached.
type cachedClient struct {
	toggles map[string]bool
}

func newCachedClient(cfg *flagshim.Config) (*cachedClient, error) {
	ctx := context.Background()
	c := &cachedClient{toggles: map[string]bool{}}

	repo, ok, err := flagshim.Load[[]flagshim.Toggle](ctx, cfg.StorageProvider, flagshim.RepoKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		repo = cfg.Bootstrap
		_ = cfg.StorageProvider.Save(ctx, flagshim.RepoKey, repo)
	}
	for _, t := range repo {
		c.toggles[t.Name] = t.Enabled
	}
	return c, nil
}

func (c *cachedClient) IsEnabled(name string) bool {
	return c.toggles[name]
}

func main() {
	godotenv.Load()

	appName := os.Getenv("FLAGCACHE_APP_NAME")
	if appName == "" {
		appName = "example"
	}

	newClient := flagshim.NewClientConstructor(newCachedClient,
		flagshim.WithPrimitive(storage.Default()),
	)

	cfg := &flagshim.Config{
		AppName:   appName,
		ClientKey: os.Getenv("UNLEASH_CLIENT_KEY"),
		URL:       os.Getenv("UNLEASH_URL"),
		Bootstrap: []flagshim.Toggle{{Name: "new-ui", Enabled: true}},
	}

	// The first client seeds the cache from Bootstrap; the second starts warm.
	for i := 1; i <= 2; i++ {
		c, err := newClient(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("client %d: new-ui enabled = %v\n", i, c.IsEnabled("new-ui"))
	}

	raw, _, _ := storage.Default().GetItem(context.Background(), storage.NamespacedKey(appName, flagshim.RepoKey))
	fmt.Printf("cached %s = %s\n", storage.NamespacedKey(appName, flagshim.RepoKey), raw)
}
