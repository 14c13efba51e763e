// Command scraper runs restaurant searches from the terminal and saves them
// to the configured export target.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
