// imagelinks - Image Link Extractor
//
// imagelinks scans Chatterino Twitch chat logs for links to image hosts and
// saves who posted what, when and where, as JSON or an SQLite database.
package main

import (
	"os"

	"github.com/ccollicutt/imagelinks/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
