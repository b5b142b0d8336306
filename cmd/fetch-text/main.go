// Command fetch-text downloads a web page and prints its plain-text
// content, one preprocessing step before normalization.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/clinlex/lexnorm/internal/htmltext"
)

func main() {
	var (
		url     = flag.String("url", "", "Page URL (required)")
		outPath = flag.String("o", "", "Output file (default stdout)")
	)
	flag.Parse()

	if *url == "" {
		log.Fatal("--url required")
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(*url)
	if err != nil {
		log.Fatal("Failed to fetch page:", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Fatalf("HTTP %d from %s", resp.StatusCode, *url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatal("Failed to read body:", err)
	}

	text := htmltext.Extract(string(body))

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatal("Failed to create output file:", err)
		}
		defer f.Close()
		out = f
	}
	fmt.Fprintln(out, text)
}
