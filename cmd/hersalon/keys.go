package main

import (
	"encoding/base64"
	"fmt"

	"github.com/gorilla/securecookie"
	"github.com/urfave/cli/v2"
)

var keysCommand = &cli.Command{
	Name:  "keys",
	Usage: "Generate COOKIE_HASH_KEY and COOKIE_BLOCK_KEY values",
	Action: func(c *cli.Context) error {
		hashKey := securecookie.GenerateRandomKey(64)
		blockKey := securecookie.GenerateRandomKey(32)
		if hashKey == nil || blockKey == nil {
			return fmt.Errorf("failed to read random bytes")
		}

		fmt.Printf("COOKIE_HASH_KEY=%s\n", base64.StdEncoding.EncodeToString(hashKey))
		fmt.Printf("COOKIE_BLOCK_KEY=%s\n", base64.StdEncoding.EncodeToString(blockKey))
		return nil
	},
}
