// yt-azure downloads a video clip with yt-dlp and uploads it to Azure Blob
// Storage.
package main

import "github.com/ytazure/yt-azure/internal/cli"

func main() {
	cli.Main()
}
