package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/wigconnect/wigconnect/internal/presentation"
	"github.com/wigconnect/wigconnect/internal/settings"
)

// checksettings decodes the settings file the server would load and reports
// entries the page has no slot for.
func main() {
	_ = godotenv.Load()

	path := os.Getenv("SETTINGS_PATH")
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	if path == "" {
		path = "settings.json"
	}

	if err := check(context.Background(), path); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func check(ctx context.Context, path string) error {
	src := &settings.FileSource{Path: path}
	raw, err := src.Fetch(ctx)
	if err != nil {
		return err
	}
	doc, err := settings.Decode(raw)
	if err != nil {
		return err
	}

	err = presentation.Binder{Strict: true}.Apply(doc, presentation.Skeleton())
	if errors.Is(err, presentation.ErrSlotMissing) {
		fmt.Fprintf(os.Stdout, "warning: %s\n", err)
	} else if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "%s: ok (%s, delay %s)\n", src, doc.BusinessName(), doc.LoadingDelay())
	return nil
}
