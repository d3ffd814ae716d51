package download

// Package download wraps the yt-dlp collaborator behind the Fetcher
// interface: one blocking fetch per run, optionally restricted to a clip
// range cut at the nearest keyframes, reporting the final written file path.
